package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"makarios/internal/apierror"
	"makarios/internal/dto"
	"makarios/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// custoCacheTTL keeps the costing preview cheap to poll from the product
// screen. Short on purpose: material prices and BOMs change while the user
// edits them.
const custoCacheTTL = 60 * time.Second

type ProdutosHandler struct {
	svc service.ProdutoService
	rdb *redis.Client
}

func NewProdutosHandler(svc service.ProdutoService, rdb *redis.Client) *ProdutosHandler {
	return &ProdutosHandler{svc: svc, rdb: rdb}
}

// Criar registers a product with its material list.
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMaterialDuplicado) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProdutosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Obter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProdutoNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrMaterialDuplicado):
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Remover(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProdutoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Custo previews the production cost for ?quantidade=N units (default: the
// product's planned quantity). Responses are cached in Redis for a short TTL.
func (h *ProdutosHandler) Custo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	quantidade := 0
	if q := c.Query("quantidade"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("quantidade deve ser um inteiro positivo"))
			return
		}
		quantidade = n
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("custo:%s:%d", id, quantidade)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.CustoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.Custo(ctx, id, quantidade)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProdutoNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrQuantidadeInvalida):
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		default:
			c.Error(err)
		}
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, custoCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

// MaxProduzivel previews how many units current stock supports.
func (h *ProdutosHandler) MaxProduzivel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MaxProduzivel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
