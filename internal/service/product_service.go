package service

import (
	"regexp"
	"strings"

	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/repository"
)

// orderPattern 排序参数格式：<字段>_<asc|desc>
var orderPattern = regexp.MustCompile(`^(.+)_(asc|desc)$`)

// SortDirective 解析后的排序指令
type SortDirective struct {
	Field string
	Desc  bool
}

// ParseOrder 解析排序参数，格式不符或字段不在白名单时返回 false
func ParseOrder(raw string) (SortDirective, bool) {
	matches := orderPattern.FindStringSubmatch(raw)
	if matches == nil {
		return SortDirective{}, false
	}
	if !repository.IsProductSortField(matches[1]) {
		return SortDirective{}, false
	}
	return SortDirective{Field: matches[1], Desc: matches[2] == constants.SortDirectionDesc}, true
}

// ProductSearchInput 商品搜索输入
type ProductSearchInput struct {
	Search string
	Order  string
	Page   int
	UserID uint // 0 表示匿名
}

// ProductListItem 列表项，Favored 仅对登录用户有意义
type ProductListItem struct {
	models.Product
	Favored bool `json:"favored"`
}

// ProductSearchResult 商品搜索结果，Search/Order 原样回显请求参数
type ProductSearchResult struct {
	Items    []ProductListItem
	Total    int64
	Page     int
	PageSize int
	Search   string
	Order    string
}

// ProductDetail 商品详情
type ProductDetail struct {
	Product *models.Product
	Favored bool
	Reviews []models.OrderItem
}

// ProductService 商品业务服务
type ProductService struct {
	repo      repository.ProductRepository
	favorites *FavoriteService
	reviews   *ReviewService
	pageSize  int
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, favorites *FavoriteService, reviews *ReviewService, pageSize int) *ProductService {
	if pageSize <= 0 {
		pageSize = 16
	}
	return &ProductService{
		repo:      repo,
		favorites: favorites,
		reviews:   reviews,
		pageSize:  pageSize,
	}
}

// PageSize 固定分页大小
func (s *ProductService) PageSize() int {
	return s.pageSize
}

// Search 搜索上架商品，非法的排序参数会被忽略
func (s *ProductService) Search(input ProductSearchInput) (*ProductSearchResult, error) {
	page := normalizePage(input.Page)
	filter := repository.ProductSearchFilter{
		Page:     page,
		PageSize: s.pageSize,
		Search:   strings.TrimSpace(input.Search),
	}
	if directive, ok := ParseOrder(input.Order); ok {
		filter.SortField = directive.Field
		filter.SortDesc = directive.Desc
	}

	products, total, err := s.repo.Search(filter)
	if err != nil {
		return nil, err
	}

	favored := map[uint]bool{}
	if input.UserID != 0 && len(products) > 0 && s.favorites != nil {
		ids := make([]uint, 0, len(products))
		for _, product := range products {
			ids = append(ids, product.ID)
		}
		favored, err = s.favorites.FavoritedIDs(input.UserID, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]ProductListItem, 0, len(products))
	for _, product := range products {
		items = append(items, ProductListItem{Product: product, Favored: favored[product.ID]})
	}
	return &ProductSearchResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: s.pageSize,
		Search:   input.Search,
		Order:    input.Order,
	}, nil
}

// GetDetail 商品详情，含当前用户收藏状态与最近评价
func (s *ProductService) GetDetail(productID, userID uint) (*ProductDetail, error) {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.OnSale {
		return nil, ErrProductNotOnSale
	}

	detail := &ProductDetail{Product: product, Reviews: []models.OrderItem{}}
	if userID != 0 && s.favorites != nil {
		if detail.Favored, err = s.favorites.IsFavorited(userID, productID); err != nil {
			return nil, err
		}
	}
	if s.reviews != nil {
		if detail.Reviews, err = s.reviews.RecentReviews(productID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
