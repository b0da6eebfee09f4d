package public

import (
	"errors"
	"strings"

	handlershared "github.com/eshop-next/internal/http/handlers/shared"
	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductDetailView 商品详情，附带当前用户是否已加购
type ProductDetailView struct {
	models.Product
	InCart bool `json:"in_cart"`
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetProducts 按关键字与分类搜索商品
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := normalizePagination(c)

	categoryID, ok := handlershared.ParseOptionalUintQuery(c, "category_id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	keyword := strings.TrimSpace(c.Query("keyword"))

	products, total, err := h.ProductService.Search(service.ProductSearchInput{
		Keyword:    keyword,
		CategoryID: categoryID,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetProductByID 获取商品详情；带 user_id 查询参数时校验用户存在并返回加购状态
func (h *Handler) GetProductByID(c *gin.Context) {
	productID, ok := handlershared.ParseUintParam(c, "id", "error.bad_request")
	if !ok {
		return
	}
	userID, ok := handlershared.ParseOptionalUintQuery(c, "user_id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.user_invalid", nil)
		return
	}
	if userID > 0 {
		user, err := h.UserRepo.GetByID(userID)
		if err != nil {
			respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
			return
		}
		if user == nil {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
	}

	product, err := h.ProductService.GetByID(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	view := ProductDetailView{Product: *product}
	if userID > 0 {
		inCart, err := h.CartService.Contains(userID, product.ID)
		if err != nil {
			respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
			return
		}
		view.InCart = inCart
	}
	response.Success(c, view)
}
