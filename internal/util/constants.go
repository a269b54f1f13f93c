package util

const (
	StorageLocal = "local"
	StorageDrive = "drive"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const MimeOctetStream = "application/octet-stream"

// 固定的响应文本，前端按原文匹配
const (
	MsgUserCreated     = "User created successfully"
	MsgCourseCreated   = "Course created successfully"
	MsgFileUploaded    = "File uploaded and saved."
	MsgCommentAdded    = "Comment added successfully"
	MsgRatingAdded     = "Rating added successfully"
	MsgFavoriteAdded   = "Material added to favorites"
	MsgDepartmentAdded = "Department added successfully"
	MsgActivityLogged  = "User activity logged"
	MsgUserRoleUpdated = "User role updated successfully"
)
