package service

// Stubs en memoria de los repositorios, compartidos por los tests del
// paquete. DB() devuelve nil, con lo que runTx ejecuta fn(nil) y los
// servicios se testean sin base de datos.

import (
	"context"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

// ── stubCuotaRepo ─────────────────────────────────────────────────────────────

type stubCuotaRepo struct {
	cuotas     map[int]*model.Cuota
	seq        int
	lastFilter dto.CuotaFilter
}

func newStubCuotaRepo() *stubCuotaRepo {
	return &stubCuotaRepo{cuotas: make(map[int]*model.Cuota)}
}

func (r *stubCuotaRepo) DB() *gorm.DB { return nil }

func (r *stubCuotaRepo) FindByID(_ context.Context, id int) (*model.Cuota, error) {
	c, ok := r.cuotas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCuotaRepo) ListBySolicitud(_ context.Context, idsolicitud int) ([]model.Cuota, error) {
	var out []model.Cuota
	for _, c := range r.cuotas {
		if c.RelaSolicitud == idsolicitud {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NroCuota < out[j].NroCuota })
	return out, nil
}

func (r *stubCuotaRepo) UltimaCuota(_ context.Context, idsolicitud int) (*model.Cuota, error) {
	var ultima *model.Cuota
	for _, c := range r.cuotas {
		if c.RelaSolicitud != idsolicitud {
			continue
		}
		if ultima == nil || c.NroCuota > ultima.NroCuota {
			ultima = c
		}
	}
	if ultima == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return ultima, nil
}

func (r *stubCuotaRepo) List(_ context.Context, filter dto.CuotaFilter) ([]model.Cuota, int64, error) {
	r.lastFilter = filter
	var out []model.Cuota
	for _, c := range r.cuotas {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCuotaRepo) CreateBatch(_ context.Context, _ *gorm.DB, cuotas []model.Cuota) error {
	for i := range cuotas {
		r.seq++
		cuotas[i].IDCuota = r.seq
		c := cuotas[i]
		r.cuotas[c.IDCuota] = &c
	}
	return nil
}

func (r *stubCuotaRepo) PagarTx(_ context.Context, _ *gorm.DB, c *model.Cuota) error {
	stored, ok := r.cuotas[c.IDCuota]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Estado = c.Estado
	stored.Fecha = c.Fecha
	stored.SaldoAnterior = c.SaldoAnterior
	return nil
}

func (r *stubCuotaRepo) UpdateImporteTx(_ context.Context, _ *gorm.DB, id int, importe decimal.Decimal) error {
	stored, ok := r.cuotas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Importe = importe
	return nil
}

func (r *stubCuotaRepo) UpdateImporteImpagasTx(_ context.Context, _ *gorm.DB, idsolicitud int, importe decimal.Decimal) error {
	for _, c := range r.cuotas {
		if c.RelaSolicitud == idsolicitud && c.Estado == model.CuotaImpaga {
			c.Importe = importe
		}
	}
	return nil
}

func (r *stubCuotaRepo) SumImportePagadas(_ context.Context, _ *gorm.DB, idsolicitud int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range r.cuotas {
		if c.RelaSolicitud == idsolicitud && c.Estado == model.CuotaPagada {
			total = total.Add(c.Importe)
		}
	}
	return total, nil
}

var _ repository.CuotaRepository = (*stubCuotaRepo)(nil)

// ── stubSolicitudRepo ─────────────────────────────────────────────────────────

type stubSolicitudRepo struct {
	solicitudes map[int]*model.Solicitud
	seq         int
}

func newStubSolicitudRepo() *stubSolicitudRepo {
	return &stubSolicitudRepo{solicitudes: make(map[int]*model.Solicitud)}
}

func (r *stubSolicitudRepo) DB() *gorm.DB { return nil }

func (r *stubSolicitudRepo) FindByID(_ context.Context, id int) (*model.Solicitud, error) {
	s, ok := r.solicitudes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSolicitudRepo) FindByIDTx(ctx context.Context, _ *gorm.DB, id int) (*model.Solicitud, error) {
	return r.FindByID(ctx, id)
}

func (r *stubSolicitudRepo) FindByNro(_ context.Context, nro string) (*model.Solicitud, error) {
	for _, s := range r.solicitudes {
		if s.NroSolicitud == nro {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSolicitudRepo) List(_ context.Context, _ dto.SolicitudFilter) ([]model.Solicitud, int64, error) {
	var out []model.Solicitud
	for _, s := range r.solicitudes {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSolicitudRepo) NroExists(_ context.Context, nro string) (bool, error) {
	for _, s := range r.solicitudes {
		if s.NroSolicitud == nro {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSolicitudRepo) NextNro(_ context.Context) (int, error) {
	max := 0
	for _, s := range r.solicitudes {
		if n, err := strconv.Atoi(s.NroSolicitud); err == nil && n > max {
			max = n
		}
	}
	return max + 1, nil
}

func (r *stubSolicitudRepo) Create(_ context.Context, _ *gorm.DB, s *model.Solicitud) error {
	r.seq++
	s.IDSolicitud = r.seq
	r.solicitudes[s.IDSolicitud] = s
	return nil
}

func (r *stubSolicitudRepo) Update(_ context.Context, _ *gorm.DB, s *model.Solicitud) error {
	stored, ok := r.solicitudes[s.IDSolicitud]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*stored = *s
	return nil
}

func (r *stubSolicitudRepo) UpdateCantidadCuotasTx(_ context.Context, _ *gorm.DB, id, cantidad int) error {
	stored, ok := r.solicitudes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.CantidadCuotas = cantidad
	return nil
}

func (r *stubSolicitudRepo) UpdateTotalesTx(_ context.Context, _ *gorm.DB, id int, totalabonado, porcentaje decimal.Decimal) error {
	stored, ok := r.solicitudes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.TotalAbonado = totalabonado
	stored.PorcentajePagado = porcentaje
	return nil
}

func (r *stubSolicitudRepo) UpdateObservacion(_ context.Context, id int, observacion string) error {
	stored, ok := r.solicitudes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Observacion = observacion
	return nil
}

var _ repository.SolicitudRepository = (*stubSolicitudRepo)(nil)

// ── stubAdelantoRepo ──────────────────────────────────────────────────────────

type stubAdelantoRepo struct {
	adelantos map[int]*model.Adelanto
	seq       int
}

func newStubAdelantoRepo() *stubAdelantoRepo {
	return &stubAdelantoRepo{adelantos: make(map[int]*model.Adelanto)}
}

var _ repository.AdelantoRepository = (*stubAdelantoRepo)(nil)

func (r *stubAdelantoRepo) ListDetallado(_ context.Context) ([]model.Adelanto, error) {
	var out []model.Adelanto
	for _, a := range r.adelantos {
		out = append(out, *a)
	}
	// orden por fecha descendente, como el listado real
	sort.Slice(out, func(i, j int) bool {
		return out[i].AdelantoFecha.After(out[j].AdelantoFecha)
	})
	return out, nil
}

func (r *stubAdelantoRepo) ListBySolicitud(_ context.Context, idsolicitud int) ([]model.Adelanto, error) {
	var out []model.Adelanto
	for _, a := range r.adelantos {
		if a.RelaSolicitud == idsolicitud {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AdelantoFecha.Before(out[j].AdelantoFecha)
	})
	return out, nil
}

func (r *stubAdelantoRepo) SumBySolicitud(_ context.Context, idsolicitud int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range r.adelantos {
		if a.RelaSolicitud == idsolicitud {
			total = total.Add(a.AdelantoImporte)
		}
	}
	return total, nil
}

func (r *stubAdelantoRepo) Create(_ context.Context, a *model.Adelanto) error {
	r.seq++
	a.IDAdelanto = r.seq
	copia := *a
	r.adelantos[a.IDAdelanto] = &copia
	return nil
}

func (r *stubAdelantoRepo) Delete(_ context.Context, id int) error {
	delete(r.adelantos, id)
	return nil
}

// ── Helpers de seed ───────────────────────────────────────────────────────────

func seedSolicitud(r *stubSolicitudRepo, nro string, monto, totalAPagar float64) *model.Solicitud {
	r.seq++
	s := &model.Solicitud{
		IDSolicitud:  r.seq,
		NroSolicitud: nro,
		RelaCliente:  1,
		RelaProducto: 1,
		RelaVendedor: 1,
		Monto:        decimal.NewFromFloat(monto),
		TotalAPagar:  decimal.NewFromFloat(totalAPagar),
		Estado:       model.SolicitudActiva,
	}
	r.solicitudes[s.IDSolicitud] = s
	return s
}

func seedCuota(r *stubCuotaRepo, idsolicitud, nro int, importe float64, estado int) *model.Cuota {
	r.seq++
	c := &model.Cuota{
		IDCuota:       r.seq,
		RelaSolicitud: idsolicitud,
		NroCuota:      nro,
		Importe:       decimal.NewFromFloat(importe),
		Estado:        estado,
	}
	r.cuotas[c.IDCuota] = c
	return c
}
