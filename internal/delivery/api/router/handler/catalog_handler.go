package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/response"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const photosFormField = "photos"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves listings, categories and photos.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ListCities handles GET /cities
func (h *CatalogHandler) ListCities(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListCities(c.Request().Context()))
}

// ListProducts handles GET /products?category=&city=&q=
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query := &usecase.ProductQuery{
		City: c.QueryParam("city"),
		Text: c.QueryParam("q"),
	}

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_CATEGORY", "Catégorie invalide")
		}
		query.CategoryID = &categoryID
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.catalogUC.GetProduct(c.Request().Context(), middleware.GetPrincipal(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// CreateProduct handles the multipart POST /products
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	input, err := productInputFromForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form.File != nil {
		files = form.File[photosFormField]
	}

	photos := make([]usecase.PhotoUpload, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			h.logger.Warn("Could not open uploaded photo", slog.String("filename", file.Filename), slog.Any("error", err))

			continue
		}
		defer src.Close()

		photos = append(photos, usecase.PhotoUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get(echo.HeaderContentType),
			Size:        file.Size,
			Content:     src,
		})
	}

	out, err := h.catalogUC.CreateProduct(c.Request().Context(), middleware.GetPrincipal(c), input, photos)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// productInputFromForm reads the listing fields from a multipart or urlencoded form.
func productInputFromForm(c echo.Context) (*usecase.CreateProductInput, error) {
	input := &usecase.CreateProductInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Currency:    entity.Currency(strings.ToUpper(strings.TrimSpace(c.FormValue("currency")))),
		City:        c.FormValue("city"),
		Condition:   entity.Condition(strings.TrimSpace(c.FormValue("condition"))),
	}

	if input.Currency == "" {
		input.Currency = entity.CurrencyCDF
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(c.FormValue("price")), ",", "."), 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid fields: price (number)")
	}
	input.Price = price

	categoryID, err := uuid.Parse(strings.TrimSpace(c.FormValue("category_id")))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid fields: category_id (uuid)")
	}
	input.CategoryID = categoryID

	return input, nil
}

// DeactivateProduct handles DELETE /products/:id
func (h *CatalogHandler) DeactivateProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateProduct(c.Request().Context(), middleware.GetPrincipal(c), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ProductQR handles GET /products/:id/qr
func (h *CatalogHandler) ProductQR(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.catalogUC.ProductShareQR(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="teka-`+productID.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

// Photo handles GET /photos/* by streaming the stored object.
func (h *CatalogHandler) Photo(c echo.Context) error {
	reader, contentType, err := h.catalogUC.OpenPhoto(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, io.Reader(reader))
}
