package response

// 业务状态码，与 HTTP 语义保持一致，通过 status_code 字段返回
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
