package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/repository"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/storage"
)

const (
	formatoFecha = "2006-01-02"
	formatoHora  = "15:04"
)

type DenunciaService interface {
	Create(ctx context.Context, input dto.CreateDenunciaInput, imagenes []dto.ImagenArchivo) (*model.Denuncia, error)
	List(ctx context.Context) ([]*model.Denuncia, error)
	Get(ctx context.Context, id uint) (*model.Denuncia, error)
	Update(ctx context.Context, id uint, input dto.UpdateDenunciaInput) (*model.Denuncia, error)
	Delete(ctx context.Context, id uint) error
}

type denunciaService struct {
	denuncias       repository.DenunciaRepository
	clasificaciones repository.ClasificacionRepository
	imageStorage    storage.ImageStorage
	folder          string
}

func NewDenunciaService(
	denuncias repository.DenunciaRepository,
	clasificaciones repository.ClasificacionRepository,
	imageStorage storage.ImageStorage,
	folder string,
) DenunciaService {
	return &denunciaService{
		denuncias:       denuncias,
		clasificaciones: clasificaciones,
		imageStorage:    imageStorage,
		folder:          folder,
	}
}

// Create validates in a fixed order (first failure wins), uploads the
// evidence photos, and persists the denuncia plus its attachment rows in one
// transaction. If anything fails after the uploads, the blobs are removed
// best-effort so the store does not accumulate orphans.
func (s *denunciaService) Create(ctx context.Context, input dto.CreateDenunciaInput, imagenes []dto.ImagenArchivo) (*model.Denuncia, error) {
	if err := requeridosDenuncia(input); err != nil {
		return nil, err
	}

	fecha, err := time.Parse(formatoFecha, input.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha debe tener formato AAAA-MM-DD", apperror.ErrFormatoInvalido)
	}

	hora, err := parseHora(input.Hora)
	if err != nil {
		return nil, err
	}

	clasificacionID, err := parseReferencia(input.ClasificacionID, "clasificacion_id")
	if err != nil {
		return nil, err
	}
	if err := s.verificarClasificacion(ctx, *clasificacionID); err != nil {
		return nil, err
	}

	var alternativaID *uint
	if input.ClasificacionAlternativaID != "" {
		alternativaID, err = parseReferencia(input.ClasificacionAlternativaID, "clasificacion_alternativa_id")
		if err != nil {
			return nil, err
		}
		if err := s.verificarClasificacion(ctx, *alternativaID); err != nil {
			return nil, err
		}
	}

	urls, err := s.subirImagenes(ctx, imagenes)
	if err != nil {
		return nil, err
	}

	denuncia := &model.Denuncia{
		Descripcion:                input.Descripcion,
		Fecha:                      fecha,
		Hora:                       hora,
		ClasificacionID:            *clasificacionID,
		ClasificacionAlternativaID: alternativaID,
		Latitud:                    *input.Latitud,
		Longitud:                   *input.Longitud,
	}

	filas := make([]model.ImagenDenuncia, len(urls))
	for i, url := range urls {
		filas[i] = model.ImagenDenuncia{URL: url}
	}

	if err := s.denuncias.CreateWithImagenes(ctx, denuncia, filas); err != nil {
		s.borrarImagenes(ctx, urls)
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	return s.Get(ctx, denuncia.ID)
}

// List returns every denuncia, most recent first: fecha descending, then
// hora descending with missing horas sorting after timed entries of the
// same fecha.
func (s *denunciaService) List(ctx context.Context) ([]*model.Denuncia, error) {
	denuncias, err := s.denuncias.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	ordenarDenuncias(denuncias)
	return denuncias, nil
}

func (s *denunciaService) Get(ctx context.Context, id uint) (*model.Denuncia, error) {
	denuncia, err := s.denuncias.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Denuncia no encontrada.", apperror.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return denuncia, nil
}

func (s *denunciaService) Update(ctx context.Context, id uint, input dto.UpdateDenunciaInput) (*model.Denuncia, error) {
	denuncia, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Descripcion != nil {
		denuncia.Descripcion = *input.Descripcion
	}
	if input.Fecha != nil {
		fecha, err := time.Parse(formatoFecha, *input.Fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha debe tener formato AAAA-MM-DD", apperror.ErrFormatoInvalido)
		}
		denuncia.Fecha = fecha
	}
	if input.Hora != nil {
		hora, err := parseHora(*input.Hora)
		if err != nil {
			return nil, err
		}
		denuncia.Hora = hora
	}
	if input.ClasificacionID != nil {
		if err := s.verificarClasificacion(ctx, *input.ClasificacionID); err != nil {
			return nil, err
		}
		denuncia.ClasificacionID = *input.ClasificacionID
		denuncia.Clasificacion = model.Clasificacion{}
	}
	if input.ClasificacionAlternativaID != nil {
		if err := s.verificarClasificacion(ctx, *input.ClasificacionAlternativaID); err != nil {
			return nil, err
		}
		denuncia.ClasificacionAlternativaID = input.ClasificacionAlternativaID
		denuncia.ClasificacionAlternativa = nil
	}
	if input.Latitud != nil {
		denuncia.Latitud = *input.Latitud
	}
	if input.Longitud != nil {
		denuncia.Longitud = *input.Longitud
	}

	if err := s.denuncias.Update(ctx, denuncia); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return s.Get(ctx, id)
}

func (s *denunciaService) Delete(ctx context.Context, id uint) error {
	denuncia, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.denuncias.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	urls := make([]string, len(denuncia.Imagenes))
	for i, imagen := range denuncia.Imagenes {
		urls[i] = imagen.URL
	}
	s.borrarImagenes(ctx, urls)

	return nil
}

func requeridosDenuncia(input dto.CreateDenunciaInput) error {
	switch {
	case strings.TrimSpace(input.Descripcion) == "":
		return fmt.Errorf("%w: descripcion es requerida", apperror.ErrCampoRequerido)
	case input.Fecha == "":
		return fmt.Errorf("%w: fecha es requerida", apperror.ErrCampoRequerido)
	case input.ClasificacionID == "":
		return fmt.Errorf("%w: clasificacion_id es requerido", apperror.ErrCampoRequerido)
	case input.Latitud == nil || input.Longitud == nil:
		return fmt.Errorf("%w: ubicación (latitud y longitud) requerida", apperror.ErrCampoRequerido)
	}
	return nil
}

// parseHora normalizes the optional HH:MM field; empty means not provided.
func parseHora(valor string) (*string, error) {
	if valor == "" {
		return nil, nil
	}
	t, err := time.Parse(formatoHora, valor)
	if err != nil {
		return nil, fmt.Errorf("%w: hora debe tener formato HH:MM", apperror.ErrFormatoInvalido)
	}
	normalizada := t.Format(formatoHora)
	return &normalizada, nil
}

func parseReferencia(valor, campo string) (*uint, error) {
	id, err := strconv.ParseUint(valor, 10, 32)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: %s debe ser un entero positivo", apperror.ErrFormatoInvalido, campo)
	}
	parsed := uint(id)
	return &parsed, nil
}

func (s *denunciaService) verificarClasificacion(ctx context.Context, id uint) error {
	if _, err := s.clasificaciones.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: la clasificación %d no existe", apperror.ErrReferenciaInvalida, id)
		}
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return nil
}

// subirImagenes uploads every blob; on the first failure it removes what was
// already uploaded and aborts, so the intake stays all-or-nothing.
func (s *denunciaService) subirImagenes(ctx context.Context, imagenes []dto.ImagenArchivo) ([]string, error) {
	var urls []string
	for _, imagen := range imagenes {
		url, err := s.imageStorage.UploadImage(ctx, imagen.Reader, s.folder, imagen.FileName)
		if err != nil {
			s.borrarImagenes(ctx, urls)
			return nil, fmt.Errorf("%w: no se pudo subir la imagen %s: %v", apperror.ErrInterno, imagen.FileName, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *denunciaService) borrarImagenes(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.imageStorage.DeleteImage(ctx, url); err != nil {
			zap.L().Warn("no se pudo borrar la imagen del almacenamiento", zap.String("url", url), zap.Error(err))
		}
	}
}

func ordenarDenuncias(denuncias []*model.Denuncia) {
	sort.SliceStable(denuncias, func(i, j int) bool {
		a, b := denuncias[i], denuncias[j]
		if !a.Fecha.Equal(b.Fecha) {
			return a.Fecha.After(b.Fecha)
		}
		// Same fecha: timed entries first, later horas first. HH:MM strings
		// compare chronologically.
		switch {
		case a.Hora == nil:
			return false
		case b.Hora == nil:
			return true
		default:
			return *a.Hora > *b.Hora
		}
	})
}
