package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	FeaturedOnly bool
	SortByPrice  string // asc / desc，空表示按创建时间倒序
	WithCategory bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
	OrderNo  string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

// MessageListFilter 查询留言列表的过滤条件
type MessageListFilter struct {
	Page       int
	PageSize   int
	UnreadOnly bool
}

// CommentListFilter 查询评论列表的过滤条件
type CommentListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	UserID    uint
}
