package handler

import (
	"errors"
	"net/http"

	"makarios/internal/apierror"
	"makarios/internal/dto"
	"makarios/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfeccoesHandler struct{ svc service.ConfeccaoService }

func NewConfeccoesHandler(svc service.ConfeccaoService) *ConfeccoesHandler {
	return &ConfeccoesHandler{svc: svc}
}

// Registrar commits a production run: validates stock for every material,
// then atomically decrements stock and appends the immutable record.
func (h *ConfeccoesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarConfeccaoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		var faltaErr *service.EstoqueInsuficienteError
		switch {
		case errors.Is(err, service.ErrQuantidadeInvalida):
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		case errors.Is(err, service.ErrProdutoNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.As(err, &faltaErr):
			c.JSON(http.StatusConflict, apierror.NewEstoqueInsuficiente(faltasToAPI(faltaErr.Faltas)))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ConfeccoesHandler) Listar(c *gin.Context) {
	var filter dto.ConfeccaoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remover prunes a production record from history. Stock is not restored:
// the materials were really consumed.
func (h *ConfeccoesHandler) Remover(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrConfeccaoNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// faltasToAPI converts service-layer shortfalls into the wire shape, with
// decimal amounts rendered as strings.
func faltasToAPI(faltas []service.FaltaEstoque) []apierror.FaltaEstoque {
	out := make([]apierror.FaltaEstoque, 0, len(faltas))
	for _, f := range faltas {
		out = append(out, apierror.FaltaEstoque{
			MaterialID:   f.MaterialID.String(),
			MaterialNome: f.MaterialNome,
			Necessario:   f.Necessario.String(),
			Disponivel:   f.Disponivel.String(),
			Unidade:      f.Unidade,
		})
	}
	return out
}
