package response

// AppError 接口错误：业务码、文案 key、可选附加数据与原始错误
type AppError struct {
	Code int
	Key  string
	Data interface{}
	Err  error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Key
	}
	return e.Key + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(code int, key string, err error) *AppError {
	return &AppError{
		Code: code,
		Key:  key,
		Err:  err,
	}
}

// WithData 附加返回给调用方的错误数据
func (e *AppError) WithData(data interface{}) *AppError {
	e.Data = data
	return e
}
