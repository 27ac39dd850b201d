package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDNI(t *testing.T) {
	valid := []string{"12345678", "00000001"}
	invalid := []string{"1234567", "123456789", "1234567a", "", "12 45678"}
	for _, dni := range valid {
		if !IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = false, want true", dni)
		}
	}
	for _, dni := range invalid {
		if IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = true, want false", dni)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidHora(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	invalid := []string{"24:00", "12:60", "8:30", "08:3", "0830", "", "08:30:00"}
	for _, h := range valid {
		if !IsValidHora(h) {
			t.Errorf("IsValidHora(%q) = false, want true", h)
		}
	}
	for _, h := range invalid {
		if IsValidHora(h) {
			t.Errorf("IsValidHora(%q) = true, want false", h)
		}
	}
}

func TestIsValidMes(t *testing.T) {
	valid := []string{"2024-01", "2025-12"}
	invalid := []string{"2024-13", "2024", "2024-1", "01-2024", ""}
	for _, m := range valid {
		_, ok := IsValidMes(m)
		if !ok {
			t.Errorf("IsValidMes(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		_, ok := IsValidMes(m)
		if ok {
			t.Errorf("IsValidMes(%q) = true, want false", m)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIsValidUsuario(t *testing.T) {
	valid := []string{"jperez", "j.perez_01", "abc"}
	invalid := []string{"ab", "con espacio", "niño", ""}
	for _, u := range valid {
		if !IsValidUsuario(u) {
			t.Errorf("IsValidUsuario(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsuario(u) {
			t.Errorf("IsValidUsuario(%q) = true, want false", u)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "dni", Message: "invalid"},
		{Field: "fecha", Message: "required"},
	}
	got := errs.Error()
	want := "dni: invalid; fecha: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "dni", Message: "invalid"},
		{Field: "fecha", Message: "required"},
	}
	got := errs.ToMap()
	if got["dni"] != "invalid" || got["fecha"] != "required" {
		t.Errorf("ValidationErrors.ToMap() = %v", got)
	}
}
