package domain

import (
	"time"

	"github.com/google/uuid"
)

// ColaboradorID uniquely identifies a colaborador (employee).
type ColaboradorID uuid.UUID

// Colaborador is an employee who receives payslips. Email is unique across
// all colaboradores and Unidade selects the distribution list they belong to.
type Colaborador struct {
	ID        ColaboradorID `json:"id"`
	Nome      string        `json:"nome"`
	Email     string        `json:"email"`
	Unidade   string        `json:"unidade"`
	CreatedAt time.Time     `json:"createdAt"`
}

// UnidadeCount is the number of colaboradores registered in one unidade.
type UnidadeCount struct {
	Unidade string `json:"unidade" yaml:"unidade"`
	Total   int64  `json:"total"   yaml:"total"`
}

// MarshalText lets ColaboradorID be used directly in JSON payloads.
func (id ColaboradorID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a textual UUID into id.
func (id *ColaboradorID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ColaboradorInput carries the fields of a colaborador created through the API.
type ColaboradorInput struct {
	Nome    string `json:"nome"    yaml:"nome"    validate:"required"`
	Email   string `json:"email"   yaml:"email"   validate:"required,email"`
	Unidade string `json:"unidade" yaml:"unidade" validate:"required"`
}

// ColaboradorPatch changes the non-nil fields of a colaborador.
type ColaboradorPatch struct {
	Nome    *string `json:"nome,omitempty"    yaml:"nome,omitempty"`
	Email   *string `json:"email,omitempty"   yaml:"email,omitempty"   validate:"omitempty,email"`
	Unidade *string `json:"unidade,omitempty" yaml:"unidade,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p ColaboradorPatch) Empty() bool {
	return p.Nome == nil && p.Email == nil && p.Unidade == nil
}

// String returns the canonical UUID form of id.
func (id ColaboradorID) String() string {
	return uuid.UUID(id).String()
}
