package clinic

import "strings"

const reportBanner = "--------------------------------\n"

// PatientsReturnedWithinYear lists active patients who qualify for the
// returned-within-a-year check, one full name per line, wrapped in the
// banner. An empty body is still banner-wrapped.
func (s *Service) PatientsReturnedWithinYear() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var b strings.Builder
	for _, client := range s.clients.Active() {
		if client.HasReturnedWithinYear(now) {
			b.WriteString(client.FullName())
			b.WriteString("\n")
		}
	}
	return reportBanner + b.String() + reportBanner
}

// PatientsLapsedOverYear lists active patients whose last visit is over a
// year old. Unlike PatientsReturnedWithinYear it returns the empty string
// when nothing matches; callers substitute their own "none" message.
func (s *Service) PatientsLapsedOverYear() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var b strings.Builder
	for _, client := range s.clients.Active() {
		if client.LapsedOverYear(now) {
			b.WriteString(client.FullName())
			b.WriteString("\n")
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return reportBanner + "Here is the list of patients:\n" + b.String() + reportBanner
}
