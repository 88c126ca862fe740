package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// User facing messages, in the clinic's locale.
const (
	MsgInvalidPhone    = "Teléfono inválido. Ej: 9999-9999 o +1 202-555-0123"
	MsgInvalidEmail    = "Correo inválido"
	MsgScheduleMissing = "Ingrese un horario (ej: L-V 09:00-17:00)"
)

var (
	phoneSeparators = regexp.MustCompile(`[\s().-]`)
	intlDigits      = regexp.MustCompile(`^\d{8,15}$`)
	localDigits     = regexp.MustCompile(`^\d{7,15}$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,24}$`)

	// Day letters: L M X J V S D (Mon..Sun, X is Wednesday).
	scheduleSegment = regexp.MustCompile(`^([LMXJVSD](?:\s*-\s*[LMXJVSD])?)\s+((?:[01]\d|2[0-3]):[0-5]\d)\s*-\s*((?:[01]\d|2[0-3]):[0-5]\d)$`)
)

// IsPhoneIntl accepts local numbers (7-15 digits) and numbers with a country
// code ("+" then 8-15 digits) once spaces, parentheses, dots and dashes are
// stripped.
func IsPhoneIntl(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return false
	}
	t := phoneSeparators.ReplaceAllString(s, "")
	if rest, ok := strings.CutPrefix(t, "+"); ok {
		return intlDigits.MatchString(rest)
	}
	return localDigits.MatchString(t)
}

// IsEmail requires a domain and a 2-24 letter TLD. It says nothing about
// whether the domain exists.
func IsEmail(v string) bool {
	if v == "" {
		return false
	}
	return emailPattern.MatchString(v)
}

// ScheduleResult is the outcome of ValidateSchedule. Message is empty when
// Valid is true.
type ScheduleResult struct {
	Valid   bool
	Message string
}

// ValidateSchedule checks a weekly schedule such as "L-V 09:00-17:00" or
// "S 08:00-12:00, D 09:00-13:00". The first failing segment is reported by
// its 1-based position.
func ValidateSchedule(v string) ScheduleResult {
	if strings.TrimSpace(v) == "" {
		return ScheduleResult{Valid: false, Message: MsgScheduleMissing}
	}

	var segments []string
	for _, part := range strings.Split(v, ",") {
		if seg := strings.TrimSpace(part); seg != "" {
			segments = append(segments, seg)
		}
	}

	for i, seg := range segments {
		m := scheduleSegment.FindStringSubmatch(seg)
		if m == nil {
			return ScheduleResult{
				Valid:   false,
				Message: fmt.Sprintf("Formato inválido en tramo %d. Ej: L-V 09:00-17:00", i+1),
			}
		}
		if toMinutes(m[2]) >= toMinutes(m[3]) {
			return ScheduleResult{
				Valid:   false,
				Message: fmt.Sprintf("Rango horario inválido en tramo %d (inicio debe ser menor que fin)", i+1),
			}
		}
	}

	return ScheduleResult{Valid: true}
}

// toMinutes expects an already matched HH:MM.
func toMinutes(hm string) int {
	h, _ := strconv.Atoi(hm[:2])
	m, _ := strconv.Atoi(hm[3:])
	return h*60 + m
}
