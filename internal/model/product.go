package model

// Product type and status defaults applied on creation.
const (
	DefaultProductType   = "P" // P = produto, S = serviço
	DefaultProductStatus = "A" // A = ativo, I = inativo
)

// ProductCreate is the body accepted by POST /products. nome and preco must be
// present; an empty name is left for the remote API to judge.
type ProductCreate struct {
	Nome     *string  `json:"nome" binding:"required"`
	Codigo   *string  `json:"codigo,omitempty"`
	Preco    *float64 `json:"preco" binding:"required"`
	Tipo     string   `json:"tipo,omitempty"`
	Situacao string   `json:"situacao,omitempty"`
}

// ApplyDefaults fills the optional fields that have a documented default.
func (p *ProductCreate) ApplyDefaults() {
	if p.Tipo == "" {
		p.Tipo = DefaultProductType
	}
	if p.Situacao == "" {
		p.Situacao = DefaultProductStatus
	}
}

// ProductUpdate is the body accepted by PUT /products/:id. Every field is a
// pointer so that absent and null fields can be told apart from zero values.
type ProductUpdate struct {
	Nome        *string  `json:"nome"`
	Codigo      *string  `json:"codigo"`
	Preco       *float64 `json:"preco"`
	Tipo        *string  `json:"tipo"`
	Situacao    *string  `json:"situacao"`
	Descricao   *string  `json:"descricao"`
	Observacoes *string  `json:"observacoes"`
}

// Payload returns only the fields the caller supplied with a non-null value.
func (p ProductUpdate) Payload() map[string]any {
	out := make(map[string]any, 7)
	setString(out, "nome", p.Nome)
	setString(out, "codigo", p.Codigo)
	if p.Preco != nil {
		out["preco"] = *p.Preco
	}
	setString(out, "tipo", p.Tipo)
	setString(out, "situacao", p.Situacao)
	setString(out, "descricao", p.Descricao)
	setString(out, "observacoes", p.Observacoes)
	return out
}

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
