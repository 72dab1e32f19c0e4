package clinicapi

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ToDoctor конвертирует DTO врача в доменную модель
func ToDoctor(dto DoctorDTO) domain.Doctor {
	return domain.Doctor{
		ID:        dto.ID.String(),
		Name:      ptr.Value(dto.Name),
		Email:     ptr.Value(dto.Email),
		Specialty: ptr.Value(dto.Specialty),
	}
}

// ToWorkingHours конвертирует настройки врача, подставляя значения по умолчанию
// Значения по умолчанию подставляются для пустых и отсутствующих полей, в том числе для обеда
func ToWorkingHours(dto DoctorSettingsDTO, doctorID string) domain.WorkingHoursConfig {
	cfg := domain.DefaultWorkingHours(doctorID)

	if dto.AppointmentDurationMinutes.Valid && dto.AppointmentDurationMinutes.Value > 0 {
		cfg.AppointmentDurationMinutes = dto.AppointmentDurationMinutes.Value
	}
	if v := strings.TrimSpace(ptr.Value(dto.WorkStartTime)); v != "" {
		cfg.WorkStart = v
	}
	if v := strings.TrimSpace(ptr.Value(dto.WorkEndTime)); v != "" {
		cfg.WorkEnd = v
	}
	if v := strings.TrimSpace(ptr.Value(dto.LunchStartTime)); v != "" {
		cfg.LunchStart = v
	}
	if v := strings.TrimSpace(ptr.Value(dto.LunchEndTime)); v != "" {
		cfg.LunchEnd = v
	}

	return cfg
}

// ToAppointment конвертирует DTO приёма в доменную модель
// Непарсящееся время приёма превращается в nil, такой приём не займёт ни один слот
func ToAppointment(dto AppointmentDTO, loc *time.Location) domain.Appointment {
	appt := domain.Appointment{
		ID:              dto.ID.String(),
		PatientID:       dto.PatientID.String(),
		PatientName:     ptr.Value(dto.PatientName),
		DoctorID:        dto.DoctorID.String(),
		ScheduledAt:     types.ParseOptionalWireDateTime(dto.ScheduledAt, loc),
		Status:          domain.NormalizeAppointmentStatus(ptr.Value(dto.Status)),
		InsurancePlanID: dto.InsurancePlanID.Ptr(),
	}
	if dto.DurationMinutes.Valid && dto.DurationMinutes.Value > 0 {
		appt.DurationMinutes = ptr.Ptr(dto.DurationMinutes.Value)
	}
	return appt
}

// ToAppointments конвертирует список приёмов
func ToAppointments(dtos []AppointmentDTO, loc *time.Location) []domain.Appointment {
	result := make([]domain.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		result = append(result, ToAppointment(dto, loc))
	}
	return result
}

// ToScheduleBlock конвертирует DTO блокировки в доменную модель
func ToScheduleBlock(dto ScheduleBlockDTO, loc *time.Location) domain.ScheduleBlock {
	return domain.ScheduleBlock{
		ID:       dto.ID.String(),
		DoctorID: dto.DoctorID.String(),
		StartAt:  types.ParseOptionalWireDateTime(dto.StartAt, loc),
		EndAt:    types.ParseOptionalWireDateTime(dto.EndAt, loc),
		Reason:   ptr.Value(dto.Reason),
	}
}

// ToScheduleBlocks конвертирует список блокировок
func ToScheduleBlocks(dtos []ScheduleBlockDTO, loc *time.Location) []domain.ScheduleBlock {
	result := make([]domain.ScheduleBlock, 0, len(dtos))
	for _, dto := range dtos {
		result = append(result, ToScheduleBlock(dto, loc))
	}
	return result
}

// ToInsuranceDays конвертирует дни страховых планов, пропуская некорректные дни недели
func ToInsuranceDays(dtos []InsuranceDayDTO) []domain.InsuranceDay {
	result := make([]domain.InsuranceDay, 0, len(dtos))
	for _, dto := range dtos {
		if !dto.Weekday.Valid || dto.Weekday.Value < 0 || dto.Weekday.Value > 6 {
			continue
		}
		result = append(result, domain.InsuranceDay{
			Weekday:         time.Weekday(dto.Weekday.Value),
			InsurancePlanID: dto.InsurancePlanID.Ptr(),
		})
	}
	return result
}

// ToInsurancePlan конвертирует DTO плана, план без флага active считается активным
func ToInsurancePlan(dto InsurancePlanDTO) domain.InsurancePlan {
	return domain.InsurancePlan{
		ID:     dto.ID.String(),
		Name:   strings.TrimSpace(ptr.Value(dto.Name)),
		Active: !dto.Active.Valid || dto.Active.Value != 0,
	}
}

// FromInsuranceDays строит тело запроса на сохранение недели
func FromInsuranceDays(days []domain.InsuranceDay) UpdateInsuranceDaysRequest {
	week := domain.FullWeek(days)
	req := UpdateInsuranceDaysRequest{Days: make([]InsuranceDayRequest, 0, len(week))}
	for _, d := range week {
		req.Days = append(req.Days, InsuranceDayRequest{
			Weekday:         int(d.Weekday),
			InsurancePlanID: d.InsurancePlanID,
		})
	}
	return req
}

// FromWorkingHours строит тело запроса на обновление настроек
func FromWorkingHours(cfg domain.WorkingHoursConfig) UpdateDoctorSettingsRequest {
	return UpdateDoctorSettingsRequest{
		AppointmentDurationMinutes: cfg.AppointmentDurationMinutes,
		WorkStartTime:              cfg.WorkStart,
		WorkEndTime:                cfg.WorkEnd,
		LunchStartTime:             cfg.LunchStart,
		LunchEndTime:               cfg.LunchEnd,
	}
}
