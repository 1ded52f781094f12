package dto

// Response 统一返回信封：code 为 0 表示成功，负数为业务错误
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}
