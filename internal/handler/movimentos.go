package handler

import (
	"net/http"
	"time"

	"makarios/internal/apierror"
	"makarios/internal/dto"
	"makarios/internal/model"
	"makarios/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MovimentosHandler serves the read-only stock movement audit trail.
// Movements are only ever written by confections and manual adjustments,
// so the handler talks straight to the repository.
type MovimentosHandler struct{ repo repository.MovimentoEstoqueRepository }

func NewMovimentosHandler(repo repository.MovimentoEstoqueRepository) *MovimentosHandler {
	return &MovimentosHandler{repo: repo}
}

func (h *MovimentosHandler) Listar(c *gin.Context) {
	var filter dto.MovimentoEstoqueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	repoFilter := repository.MovimentoEstoqueFilter{
		Tipo:  filter.Tipo,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	if filter.MaterialID != "" {
		id, err := uuid.Parse(filter.MaterialID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("material_id inválido"))
			return
		}
		repoFilter.MaterialID = &id
	}

	movimentos, total, err := h.repo.List(c.Request.Context(), repoFilter)
	if err != nil {
		c.Error(err)
		return
	}

	data := make([]dto.MovimentoEstoqueResponse, 0, len(movimentos))
	for i := range movimentos {
		data = append(data, movimentoToResponse(&movimentos[i]))
	}
	c.JSON(http.StatusOK, dto.MovimentoEstoqueListResponse{
		Data:  data,
		Total: total,
		Page:  repoFilter.Page,
		Limit: repoFilter.Limit,
	})
}

func movimentoToResponse(m *model.MovimentoEstoque) dto.MovimentoEstoqueResponse {
	resp := dto.MovimentoEstoqueResponse{
		ID:              m.ID.String(),
		MaterialID:      m.MaterialID.String(),
		MaterialNome:    m.MaterialNome,
		Tipo:            m.Tipo,
		Quantidade:      m.Quantidade,
		EstoqueAnterior: m.EstoqueAnterior,
		EstoqueNovo:     m.EstoqueNovo,
		Motivo:          m.Motivo,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
	if m.ReferenciaID != nil {
		ref := m.ReferenciaID.String()
		resp.ReferenciaID = &ref
	}
	return resp
}
