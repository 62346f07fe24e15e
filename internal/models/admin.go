package models

// Admin is a back-office account. There is a single flat admin table, no
// role hierarchy.
type Admin struct {
	ID           uint   `gorm:"column:id_admin;primaryKey" json:"id_admin"`
	Name         string `gorm:"column:nama_admin;size:100;not null" json:"nama_admin"`
	Username     string `gorm:"column:username;size:50;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:100;not null" json:"-"`
}

func (Admin) TableName() string { return "admin" }
