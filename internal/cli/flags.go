package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/spf13/pflag"
)

// emergencyTypeFlag is a pflag.Value that accepts only recognized emergency
// types, case-insensitively, and stores the canonical spelling.
type emergencyTypeFlag struct {
	value domain.EmergencyType
}

var _ pflag.Value = (*emergencyTypeFlag)(nil)

func (f *emergencyTypeFlag) String() string { return string(f.value) }

func (f *emergencyTypeFlag) Set(s string) error {
	t, ok := domain.ParseEmergencyType(s)
	if !ok {
		return fmt.Errorf("unknown emergency type %q (valid: %s)", s, emergencyTypeList())
	}
	f.value = t
	return nil
}

func (f *emergencyTypeFlag) Type() string { return "emergency-type" }

func emergencyTypeList() string {
	names := make([]string, len(domain.EmergencyTypes))
	for i, t := range domain.EmergencyTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
