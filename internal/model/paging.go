package model

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// Paging is bound from the page and limit query parameters. Values are
// forwarded verbatim; range checks are left to the remote API.
type Paging struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=100"`
}
