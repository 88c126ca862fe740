package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"medicita/internal/delivery/dto"
	"medicita/internal/delivery/http/middleware"
	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/blob"
	"medicita/internal/infrastructure/storage"
	"medicita/internal/repository"
	"medicita/internal/service"
	"medicita/pkg/apperror"
	"medicita/pkg/idgen"
	"medicita/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	store           *storage.MemoryStore
	userRepo        domainRepo.UserRepository
	doctorRepo      domainRepo.DoctorRepository
	patientRepo     domainRepo.PatientRepository
	appointmentRepo domainRepo.AppointmentRepository
	historyRepo     domainRepo.HistoryRecordRepository
	auditRepo       domainRepo.AuditLogRepository

	auth         AuthUsecase
	doctors      DoctorUsecase
	patients     PatientUsecase
	appointments AppointmentUsecase
	history      HistoryUsecase
	seed         SeedUsecase
	audit        AuditLogUsecase
}

func newHarness(t *testing.T, recheckOnUpdate bool) *harness {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	locker := storage.NewKeyLocker(log)
	t.Cleanup(locker.Stop)
	store := storage.NewMemoryStore()
	ids := idgen.NewWithSource(rand.NewPCG(42, 42), time.Now)

	h := &harness{
		store:           store,
		userRepo:        repository.NewUserRepository(log, store, locker, ids),
		doctorRepo:      repository.NewDoctorRepository(log, store, locker, ids),
		patientRepo:     repository.NewPatientRepository(log, store, locker, ids),
		appointmentRepo: repository.NewAppointmentRepository(log, store, locker, ids),
		historyRepo:     repository.NewHistoryRecordRepository(log, store, locker, ids),
		auditRepo:       repository.NewAuditLogRepository(log, store, locker, ids),
	}
	sessionRepo := repository.NewSessionRepository(log, store, locker)
	auditService := service.NewAuditService(log, h.auditRepo)
	linker := service.NewReferenceLinker(log, h.doctorRepo, h.patientRepo)
	scheduler := service.NewAppointmentScheduler(recheckOnUpdate)

	h.auth = NewAuthUsecase(log, h.userRepo, sessionRepo, auditService)
	h.doctors = NewDoctorUsecase(log, h.doctorRepo, auditService)
	h.patients = NewPatientUsecase(log, h.patientRepo, linker, auditService)
	h.appointments = NewAppointmentUsecase(log, h.appointmentRepo, linker, scheduler, auditService)
	h.history = NewHistoryUsecase(log, h.historyRepo, linker, auditService)
	h.seed = NewSeedUsecase(log, h.userRepo, h.doctorRepo, ids)
	h.audit = NewAuditLogUsecase(log, h.auditRepo)
	return h
}

func validDoctor(name string) *dto.DoctorRequest {
	return &dto.DoctorRequest{
		Nombre:       name,
		Especialidad: "Medicina General",
		Telefono:     "999-111-2222",
		Correo:       "doc@clinic.com",
		Horario:      "L-V 09:00-17:00",
	}
}

func TestAuth_LoginAndLogout(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.seed.Seed(ctx))

	res, err := h.auth.Login(ctx, &dto.LoginRequest{Usuario: "recep", Password: "recep"})
	require.NoError(t, err)
	assert.Equal(t, "Recepcionista", res.Rol)
	assert.Equal(t, "citas", res.Inicio)

	session, err := h.auth.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "recep", session.Login)

	require.NoError(t, h.auth.Logout(middleware.WithSession(ctx, session)))
	session, err = h.auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuth_FailedLoginKeepsExistingSession(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.seed.Seed(ctx))

	_, err := h.auth.Login(ctx, &dto.LoginRequest{Usuario: "admin", Password: "admin"})
	require.NoError(t, err)

	_, err = h.auth.Login(ctx, &dto.LoginRequest{Usuario: "ADMIN", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, apperror.IsType(err, apperror.TypeUnauthorized))

	session, err := h.auth.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, entity.RoleAdmin, session.Role)
}

func TestAuth_RegisterRejectsDuplicateLoginIgnoringCase(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	user, err := h.auth.Register(ctx, &dto.RegisterRequest{Nombre: "Ana", Usuario: "ana", Password: "x", Rol: "Doctor"})
	require.NoError(t, err)
	assert.Regexp(t, `^usr_`, user.ID)

	_, err = h.auth.Register(ctx, &dto.RegisterRequest{Nombre: "Otra", Usuario: "AnA", Password: "y", Rol: "Doctor"})
	assert.ErrorIs(t, err, ErrDuplicateLogin)
	assert.True(t, apperror.IsType(err, apperror.TypeConflict))

	_, err = h.auth.Register(ctx, &dto.RegisterRequest{Nombre: "X", Usuario: "x", Password: "x", Rol: "Paciente"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuth_DeleteUser(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	user, err := h.auth.Register(ctx, &dto.RegisterRequest{Nombre: "Ana", Usuario: "ana", Password: "x", Rol: "Doctor"})
	require.NoError(t, err)

	self := middleware.WithSession(ctx, &entity.Session{ID: user.ID, Role: entity.RoleAdmin})
	assert.ErrorIs(t, h.auth.DeleteUser(self, user.ID), ErrSelfDelete)

	require.NoError(t, h.auth.DeleteUser(ctx, user.ID))
	assert.ErrorIs(t, h.auth.DeleteUser(ctx, user.ID), ErrUserNotFound)

	list, err := h.auth.ListUsers(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestDoctor_ValidationMessagesInFormOrder(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	req := validDoctor("Dra. Ana")
	req.Telefono = "12"
	req.Correo = "bad"
	_, err := h.doctors.CreateDoctor(ctx, req)
	require.Error(t, err)
	assert.Equal(t, validator.MsgInvalidPhone, apperror.MessageOf(err))

	req = validDoctor("Dra. Ana")
	req.Correo = "ana@clinic"
	_, err = h.doctors.CreateDoctor(ctx, req)
	assert.Equal(t, validator.MsgInvalidEmail, apperror.MessageOf(err))

	req = validDoctor("Dra. Ana")
	req.Horario = "L-V 09:00-17:00, S 12:00-08:00"
	_, err = h.doctors.CreateDoctor(ctx, req)
	assert.True(t, apperror.IsType(err, apperror.TypeValidation))
	assert.Contains(t, apperror.MessageOf(err), "tramo 2")

	list, err := h.doctors.GetAllDoctors(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, list.Total, "no partial writes")
}

func TestDoctor_CRUD(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	created, err := h.doctors.CreateDoctor(ctx, validDoctor("  Dra. Ana  "))
	require.NoError(t, err)
	assert.Equal(t, "Dra. Ana", created.Nombre)

	updated, err := h.doctors.UpdateDoctor(ctx, created.ID, validDoctor("Dra. Ana Ruiz"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := h.doctors.GetDoctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dra. Ana Ruiz", got.Nombre)

	require.NoError(t, h.doctors.DeleteDoctor(ctx, created.ID))
	_, err = h.doctors.GetDoctor(ctx, created.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.ErrorIs(t, h.doctors.DeleteDoctor(ctx, created.ID), ErrDoctorNotFound)

	logs, err := h.audit.GetAllAuditLogs(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 3, logs.Total)
	assert.Equal(t, entity.AuditActionDoctorCreate, logs.Logs[0].Accion)
	assert.Equal(t, entity.AuditActionDoctorUpdate, logs.Logs[1].Accion)
	assert.Equal(t, entity.AuditActionDoctorDelete, logs.Logs[2].Accion)
}

func TestPatient_DoctorNameIsSnapshotAtWrite(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	doc, err := h.doctors.CreateDoctor(ctx, validDoctor("Dr. Luis"))
	require.NoError(t, err)

	p, err := h.patients.CreatePatient(ctx, &dto.PatientRequest{Nombre: "Juan", Edad: 30, Sexo: "M", Telefono: "9999-9999", MedicoID: doc.ID})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Luis", p.MedicoNombre)

	_, err = h.doctors.UpdateDoctor(ctx, doc.ID, validDoctor("Dr. Luis García"))
	require.NoError(t, err)

	got, err := h.patients.GetPatient(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Luis", got.MedicoNombre)

	orphan, err := h.patients.CreatePatient(ctx, &dto.PatientRequest{Nombre: "Ana", Telefono: "9999-9999", MedicoID: "doc_gone"})
	require.NoError(t, err)
	assert.Empty(t, orphan.MedicoNombre)
}

func TestPatient_PhoneValidation(t *testing.T) {
	h := newHarness(t, true)

	_, err := h.patients.CreatePatient(context.Background(), &dto.PatientRequest{Nombre: "Juan", Telefono: "555-ABCD"})
	require.Error(t, err)
	assert.Equal(t, validator.MsgInvalidPhone, apperror.MessageOf(err))
}

func TestPatient_ListFilter(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	for _, name := range []string{"Juan Pérez", "María López", "Juana Díaz"} {
		_, err := h.patients.CreatePatient(ctx, &dto.PatientRequest{Nombre: name, Telefono: "9999-9999"})
		require.NoError(t, err)
	}

	list, err := h.patients.GetAllPatients(ctx, &entity.ListFilter{Query: "JUAN"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestAppointment_RequiresPartiesAndDate(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	_, err := h.appointments.CreateAppointment(ctx, &dto.AppointmentRequest{DoctorID: "doc_1", Fecha: "2025-03-01T10:00"})
	assert.ErrorIs(t, err, ErrPatientAndDoctorRequired)

	_, err = h.appointments.CreateAppointment(ctx, &dto.AppointmentRequest{PacienteID: "pac_1", DoctorID: "doc_1"})
	assert.ErrorIs(t, err, ErrDateRequired)
}

func TestAppointment_SlotConflictAndCancel(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	doc, err := h.doctors.CreateDoctor(ctx, validDoctor("Dra. Ana"))
	require.NoError(t, err)
	pac, err := h.patients.CreatePatient(ctx, &dto.PatientRequest{Nombre: "Juan", Telefono: "9999-9999"})
	require.NoError(t, err)

	req := &dto.AppointmentRequest{PacienteID: pac.ID, DoctorID: doc.ID, Fecha: "2025-03-01T10:00", Motivo: "Control"}
	first, err := h.appointments.CreateAppointment(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Programada", first.Estado)
	assert.Equal(t, "Juan", first.PacienteNombre)
	assert.Equal(t, "Dra. Ana", first.DoctorNombre)
	assert.Equal(t, "01/03/2025 10:00", first.FechaTexto)

	_, err = h.appointments.CreateAppointment(ctx, req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, "Ya existe una cita para ese doctor en la misma fecha y hora", apperror.MessageOf(err))

	cancelled, err := h.appointments.CancelAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelada", cancelled.Estado)

	second, err := h.appointments.CreateAppointment(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := h.appointments.GetAllAppointments(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total, "cancel keeps the record")

	_, err = h.appointments.CancelAppointment(ctx, "cit_missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointment_UpdateRecheck(t *testing.T) {
	for _, tc := range []struct {
		name    string
		recheck bool
		wantErr bool
	}{
		{"recheck on", true, true},
		{"recheck off", false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, tc.recheck)
			ctx := context.Background()

			a, err := h.appointments.CreateAppointment(ctx, &dto.AppointmentRequest{PacienteID: "pac_1", DoctorID: "doc_1", Fecha: "2025-03-01T10:00"})
			require.NoError(t, err)
			b, err := h.appointments.CreateAppointment(ctx, &dto.AppointmentRequest{PacienteID: "pac_2", DoctorID: "doc_1", Fecha: "2025-03-01T11:00"})
			require.NoError(t, err)

			// editing a record in place never conflicts with itself
			_, err = h.appointments.UpdateAppointment(ctx, a.ID, &dto.AppointmentRequest{PacienteID: "pac_1", DoctorID: "doc_1", Fecha: "2025-03-01T10:00", Estado: "Confirmada"})
			require.NoError(t, err)

			_, err = h.appointments.UpdateAppointment(ctx, b.ID, &dto.AppointmentRequest{PacienteID: "pac_2", DoctorID: "doc_1", Fecha: "2025-03-01T10:00"})
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrSlotTaken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointment_UpdateUnknownIDCreatesWithConflictCheck(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()

	_, err := h.appointments.CreateAppointment(ctx, &dto.AppointmentRequest{PacienteID: "pac_1", DoctorID: "doc_1", Fecha: "2025-03-01T10:00"})
	require.NoError(t, err)

	_, err = h.appointments.UpdateAppointment(ctx, "cit_ghost", &dto.AppointmentRequest{PacienteID: "pac_2", DoctorID: "doc_1", Fecha: "2025-03-01T10:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	res, err := h.appointments.UpdateAppointment(ctx, "cit_ghost", &dto.AppointmentRequest{PacienteID: "pac_2", DoctorID: "doc_1", Fecha: "2025-03-01T12:00"})
	require.NoError(t, err)
	assert.NotEqual(t, "cit_ghost", res.ID)
}

func TestHistory_CRUD(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	_, err := h.history.CreateRecord(ctx, &dto.HistoryRequest{PacienteID: "pac_1", Fecha: "2025-02-07"})
	assert.ErrorIs(t, err, ErrPatientAndDoctorRequired)

	rec, err := h.history.CreateRecord(ctx, &dto.HistoryRequest{PacienteID: "pac_1", DoctorID: "doc_1", Fecha: "2025-02-07", Diagnostico: " Gripe "})
	require.NoError(t, err)
	assert.Equal(t, "Gripe", rec.Diagnostico)
	assert.Equal(t, "07/02/2025", rec.FechaTexto)

	require.NoError(t, h.history.DeleteRecord(ctx, rec.ID))
	_, err = h.history.GetRecord(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

func TestSeed_IsIdempotentAndNeverOverwrites(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	_, err := h.doctors.CreateDoctor(ctx, validDoctor("Dr. Existing"))
	require.NoError(t, err)

	require.NoError(t, h.seed.Seed(ctx))
	require.NoError(t, h.seed.Seed(ctx))

	users, err := h.userRepo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	doctors, err := h.doctorRepo.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Existing", doctors[0].Name)
}

func TestSeed_DoctorSchedulesAreValid(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.seed.Seed(ctx))

	doctors, err := h.doctorRepo.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	for _, d := range doctors {
		assert.NoError(t, validateDoctor(&d), d.Name)
	}
}

func TestSnapshot_ExportAndBackup(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.seed.Seed(ctx))

	sink, err := blob.NewFilesystemSink(t.TempDir())
	require.NoError(t, err)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	snapshots := NewSnapshotUsecase(log, h.userRepo, h.doctorRepo, h.patientRepo, h.appointmentRepo, h.historyRepo, sink, service.NewAuditService(log, h.auditRepo))

	snap, err := snapshots.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Users, 3)
	assert.Len(t, snap.Doctors, 2)
	assert.Empty(t, snap.Citas)

	res, err := snapshots.Backup(ctx)
	require.NoError(t, err)
	assert.Positive(t, res.Bytes)

	data, err := os.ReadFile(res.Location)
	require.NoError(t, err)
	var decoded entity.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Doctors, 2)

	logs, err := h.audit.GetAllAuditLogs(ctx, &entity.ListFilter{Query: "snapshot"})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Total)
}

type unreachableStore struct{ *storage.MemoryStore }

func (unreachableStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection reset")
}

func TestSnapshot_BackupFailsWhenStoreIsUnreachable(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	locker := storage.NewKeyLocker(log)
	t.Cleanup(locker.Stop)
	store := unreachableStore{storage.NewMemoryStore()}
	ids := idgen.NewWithSource(rand.NewPCG(7, 7), time.Now)

	dir := t.TempDir()
	sink, err := blob.NewFilesystemSink(dir)
	require.NoError(t, err)

	auditRepo := repository.NewAuditLogRepository(log, store, locker, ids)
	snapshots := NewSnapshotUsecase(log,
		repository.NewUserRepository(log, store, locker, ids),
		repository.NewDoctorRepository(log, store, locker, ids),
		repository.NewPatientRepository(log, store, locker, ids),
		repository.NewAppointmentRepository(log, store, locker, ids),
		repository.NewHistoryRecordRepository(log, store, locker, ids),
		sink,
		service.NewAuditService(log, auditRepo),
	)

	res, err := snapshots.Backup(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperror.IsType(err, apperror.TypeStorage))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
