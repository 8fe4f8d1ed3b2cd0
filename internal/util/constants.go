package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 头像上传限制
const (
	MimeImage         = "image/"
	MaxAvatarSizeByte = 5 << 20 // 5MB
)
