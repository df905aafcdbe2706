package model

import (
	"time"
)

// File 文件元数据表模型
type File struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UID       int64     `gorm:"column:uid;index:idx_file_uid"`
	Path      string    `gorm:"column:path;index:idx_file_uid_path,priority:2;size:1024"`
	Name      string    `gorm:"column:name;size:255"`
	Hash      string    `gorm:"column:hash;size:64"`
	Size      int64     `gorm:"column:size"`
	Mtime     int64     `gorm:"column:mtime"`
	IsDir     bool      `gorm:"column:is_dir"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (File) TableName() string {
	return "file"
}
