package domain

import "time"

// Destination é o resultado de avaliar o gate: seguir para a página ou redirecionar.
type Destination struct {
	redirect string
}

// Proceed libera a requisição para o handler da página.
func Proceed() Destination { return Destination{} }

// RedirectTo redireciona o visitante para o próximo passo válido.
func RedirectTo(path string) Destination { return Destination{redirect: path} }

// IsProceed indica se a requisição segue adiante.
func (d Destination) IsProceed() bool { return d.redirect == "" }

// Path retorna o destino do redirecionamento ("" quando Proceed).
func (d Destination) Path() string { return d.redirect }

func (d Destination) String() string {
	if d.IsProceed() {
		return "proceed"
	}
	return "redirect:" + d.redirect
}

// Caminhos de destino usados pelo gate.
const (
	PathSignup    = "/signup"
	PathProfiling = "/profiling"
	PathNumber    = "/number"
	PathHome      = "/home"
	PathPending   = "/pending"
)

// GateOutcome classifica uma decisão do gate para auditoria.
type GateOutcome string

const (
	OutcomeRedirect     GateOutcome = "redirect"
	OutcomeForbidden    GateOutcome = "forbidden"
	OutcomeUnauthorized GateOutcome = "unauthorized"
)

// GateEvent é o registro de auditoria de uma decisão do gate.
type GateEvent struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Path      string      `json:"path"`
	Outcome   GateOutcome `json:"outcome"`
	Reason    string      `json:"reason"`
	CreatedAt time.Time   `json:"created_at"`
}
