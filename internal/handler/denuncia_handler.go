package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/service"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/response"
)

type DenunciaHandler struct {
	denunciaService service.DenunciaService
}

func NewDenunciaHandler(denunciaService service.DenunciaService) *DenunciaHandler {
	return &DenunciaHandler{denunciaService: denunciaService}
}

// Create accepts multipart form data: the complaint fields plus zero or more
// files under the repeatable "imagenes" field.
func (h *DenunciaHandler) Create(c *gin.Context) {
	var input dto.CreateDenunciaInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: cuerpo de la petición inválido", apperror.ErrFormatoInvalido))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, fmt.Errorf("%w: se esperaba multipart/form-data", apperror.ErrFormatoInvalido))
		return
	}

	var imagenes []dto.ImagenArchivo
	for _, fileHeader := range form.File["imagenes"] {
		file, err := fileHeader.Open()
		if err != nil {
			response.Error(c, fmt.Errorf("%w: no se pudo leer la imagen %s", apperror.ErrFormatoInvalido, fileHeader.Filename))
			return
		}
		defer file.Close()

		imagenes = append(imagenes, dto.ImagenArchivo{
			Reader:   file,
			FileName: fileHeader.Filename,
		})
	}

	denuncia, err := h.denunciaService.Create(c.Request.Context(), input, imagenes)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Denuncia registrada correctamente.",
		"denuncia_id": denuncia.ID,
		"denuncia":    denuncia,
	})
}

func (h *DenunciaHandler) List(c *gin.Context) {
	denuncias, err := h.denunciaService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"denuncias": denuncias})
}

func (h *DenunciaHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	denuncia, err := h.denunciaService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"denuncia": denuncia})
}

func (h *DenunciaHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.UpdateDenunciaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: cuerpo de la petición inválido", apperror.ErrFormatoInvalido))
		return
	}

	denuncia, err := h.denunciaService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Denuncia actualizada correctamente.",
		"denuncia": denuncia,
	})
}

func (h *DenunciaHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.denunciaService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Denuncia eliminada correctamente."})
}
