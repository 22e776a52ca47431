package handler

import (
	"errors"
	"net/http"

	"makarios/internal/apierror"
	"makarios/internal/dto"
	"makarios/internal/service"

	"github.com/gin-gonic/gin"
)

type MateriaisHandler struct{ svc service.MaterialService }

func NewMateriaisHandler(svc service.MaterialService) *MateriaisHandler {
	return &MateriaisHandler{svc: svc}
}

// Criar registers a new raw material in the catalog.
func (h *MateriaisHandler) Criar(c *gin.Context) {
	var req dto.CriarMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MateriaisHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MateriaisHandler) Obter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MateriaisHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AtualizarMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remover hard-deletes a material. Products referencing it keep their BOM
// line; costing treats the line as free and unbounded from then on.
func (h *MateriaisHandler) Remover(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaterialNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AjustarEstoque applies a signed manual stock delta in the purchase unit
// and records the movement.
func (h *MateriaisHandler) AjustarEstoque(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AjustarEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarEstoque(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMaterialNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrEstoqueNegativo):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
