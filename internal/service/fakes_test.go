package service

import (
	"context"
	"fmt"
	"io"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
)

// In-memory fakes over the repository and storage interfaces. They reproduce
// the error contract of the real implementations: gorm.ErrRecordNotFound for
// absent rows and gorm.ErrDuplicatedKey for unique violations.

type fakeUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uint]*model.Usuario), nextID: 1}
}

func (r *fakeUsuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.Email == usuario.Email || existing.Cedula == usuario.Cedula {
			return gorm.ErrDuplicatedKey
		}
	}
	if err := usuario.BeforeSave(nil); err != nil {
		return err
	}
	usuario.ID = r.nextID
	r.nextID++
	copia := *usuario
	r.usuarios[usuario.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	usuario, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *usuario
	return &copia, nil
}

func (r *fakeUsuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	for _, usuario := range r.usuarios {
		if usuario.Email == email {
			copia := *usuario
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) FindAll(ctx context.Context) ([]*model.Usuario, error) {
	var usuarios []*model.Usuario
	for _, usuario := range r.usuarios {
		copia := *usuario
		usuarios = append(usuarios, &copia)
	}
	return usuarios, nil
}

func (r *fakeUsuarioRepo) Update(ctx context.Context, usuario *model.Usuario) error {
	if _, ok := r.usuarios[usuario.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, existing := range r.usuarios {
		if id != usuario.ID && (existing.Email == usuario.Email || existing.Cedula == usuario.Cedula) {
			return gorm.ErrDuplicatedKey
		}
	}
	if err := usuario.BeforeSave(nil); err != nil {
		return err
	}
	copia := *usuario
	r.usuarios[usuario.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) Delete(ctx context.Context, id uint) error {
	delete(r.usuarios, id)
	return nil
}

func (r *fakeUsuarioRepo) agregar(usuario *model.Usuario) *model.Usuario {
	if usuario.ID == 0 {
		usuario.ID = r.nextID
		r.nextID++
	}
	r.usuarios[usuario.ID] = usuario
	return usuario
}

type fakeRolRepo struct {
	roles map[uint]*model.Rol
}

func newFakeRolRepo(roles ...*model.Rol) *fakeRolRepo {
	r := &fakeRolRepo{roles: make(map[uint]*model.Rol)}
	for _, rol := range roles {
		r.roles[rol.ID] = rol
	}
	return r
}

func (r *fakeRolRepo) Create(ctx context.Context, rol *model.Rol) error {
	for _, existing := range r.roles {
		if existing.Nombre == rol.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	rol.ID = uint(len(r.roles) + 1)
	r.roles[rol.ID] = rol
	return nil
}

func (r *fakeRolRepo) FindByID(ctx context.Context, id uint) (*model.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rol, nil
}

func (r *fakeRolRepo) FindByNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	for _, rol := range r.roles {
		if rol.Nombre == nombre {
			return rol, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRolRepo) FindAll(ctx context.Context) ([]*model.Rol, error) {
	var roles []*model.Rol
	for _, rol := range r.roles {
		roles = append(roles, rol)
	}
	return roles, nil
}

func (r *fakeRolRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.roles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.roles, id)
	return nil
}

type fakeClasificacionRepo struct {
	clasificaciones map[uint]*model.Clasificacion
	referencias     map[uint]int64 // clasificación ID -> denuncias que la usan
}

func newFakeClasificacionRepo(clasificaciones ...*model.Clasificacion) *fakeClasificacionRepo {
	r := &fakeClasificacionRepo{
		clasificaciones: make(map[uint]*model.Clasificacion),
		referencias:     make(map[uint]int64),
	}
	for _, clasificacion := range clasificaciones {
		r.clasificaciones[clasificacion.ID] = clasificacion
	}
	return r
}

func (r *fakeClasificacionRepo) Create(ctx context.Context, clasificacion *model.Clasificacion) error {
	for _, existing := range r.clasificaciones {
		if existing.Nombre == clasificacion.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	clasificacion.ID = uint(len(r.clasificaciones) + 1)
	r.clasificaciones[clasificacion.ID] = clasificacion
	return nil
}

func (r *fakeClasificacionRepo) FindByID(ctx context.Context, id uint) (*model.Clasificacion, error) {
	clasificacion, ok := r.clasificaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return clasificacion, nil
}

func (r *fakeClasificacionRepo) FindAll(ctx context.Context) ([]*model.Clasificacion, error) {
	var clasificaciones []*model.Clasificacion
	for _, clasificacion := range r.clasificaciones {
		clasificaciones = append(clasificaciones, clasificacion)
	}
	return clasificaciones, nil
}

func (r *fakeClasificacionRepo) Update(ctx context.Context, clasificacion *model.Clasificacion) error {
	r.clasificaciones[clasificacion.ID] = clasificacion
	return nil
}

func (r *fakeClasificacionRepo) Delete(ctx context.Context, id uint) error {
	delete(r.clasificaciones, id)
	return nil
}

func (r *fakeClasificacionRepo) CountDenuncias(ctx context.Context, id uint) (int64, error) {
	return r.referencias[id], nil
}

type fakeDenunciaRepo struct {
	denuncias  map[uint]*model.Denuncia
	nextID     uint
	creates    int
	failCreate error
}

func newFakeDenunciaRepo() *fakeDenunciaRepo {
	return &fakeDenunciaRepo{denuncias: make(map[uint]*model.Denuncia), nextID: 1}
}

func (r *fakeDenunciaRepo) CreateWithImagenes(ctx context.Context, denuncia *model.Denuncia, imagenes []model.ImagenDenuncia) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	denuncia.ID = r.nextID
	r.nextID++
	for i := range imagenes {
		imagenes[i].DenunciaID = denuncia.ID
	}
	denuncia.Imagenes = imagenes
	copia := *denuncia
	r.denuncias[denuncia.ID] = &copia
	r.creates++
	return nil
}

func (r *fakeDenunciaRepo) FindByID(ctx context.Context, id uint) (*model.Denuncia, error) {
	denuncia, ok := r.denuncias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *denuncia
	return &copia, nil
}

func (r *fakeDenunciaRepo) FindAll(ctx context.Context) ([]*model.Denuncia, error) {
	var denuncias []*model.Denuncia
	for _, denuncia := range r.denuncias {
		copia := *denuncia
		denuncias = append(denuncias, &copia)
	}
	return denuncias, nil
}

func (r *fakeDenunciaRepo) Update(ctx context.Context, denuncia *model.Denuncia) error {
	if _, ok := r.denuncias[denuncia.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copia := *denuncia
	r.denuncias[denuncia.ID] = &copia
	return nil
}

func (r *fakeDenunciaRepo) Delete(ctx context.Context, id uint) error {
	delete(r.denuncias, id)
	return nil
}

// fakeStorage counts uploads and can be told to fail on the n-th one.
type fakeStorage struct {
	uploads    int
	failOn     int // 0 means never fail
	subidas    []string
	eliminadas []string
}

func (s *fakeStorage) UploadImage(ctx context.Context, rd io.Reader, folder, fileName string) (string, error) {
	s.uploads++
	if s.failOn != 0 && s.uploads == s.failOn {
		return "", fmt.Errorf("blob store rechazó %s", fileName)
	}
	url := fmt.Sprintf("https://img.example/%s/%s", folder, fileName)
	s.subidas = append(s.subidas, url)
	return url, nil
}

func (s *fakeStorage) DeleteImage(ctx context.Context, fileURL string) error {
	s.eliminadas = append(s.eliminadas, fileURL)
	return nil
}
