package domain

import "strings"

// reserved contém os caracteres reservados da sintaxe de busca do provedor.
// Qualquer um deles precisa ser escapado com uma barra invertida dentro de
// texto literal, senão o provedor interpreta como operador.
const reserved = "+-=&|><!(){}[]^\"~*?:\\"

func escape(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for _, c := range q {
		if strings.ContainsRune(reserved, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// SearchType representa uma expressão de busca sobre um campo.
//
// É uma árvore: Simple/Exact/Regex são folhas, Or/And combinam
// sub-expressões recursivamente. Valores são imutáveis após construção.
type SearchType interface {
	// Render produz o texto da expressão na sintaxe do provedor,
	// já com escaping aplicado nas folhas.
	Render() string
}

// Simple busca o texto como termo livre.
type Simple string

// Exact busca o texto como frase exata (entre aspas).
type Exact string

// Regex busca por expressão regular (entre barras).
type Regex string

// Or combina sub-expressões com OR explícito.
type Or []SearchType

// And combina sub-expressões com AND implícito (espaço).
type And []SearchType

func (s Simple) Render() string { return escape(string(s)) }
func (e Exact) Render() string  { return `"` + escape(string(e)) + `"` }
func (r Regex) Render() string  { return "/" + escape(string(r)) + "/" }
func (o Or) Render() string     { return joinRendered(o, " OR ") }
func (a And) Render() string    { return joinRendered(a, " ") }

func joinRendered(terms []SearchType, sep string) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Render()
	}
	return strings.Join(parts, sep)
}

// Field é um campo pesquisável do provedor. O valor é o nome exato
// usado na query string remota (mapeamento fixo 1:1).
type Field string

const (
	FieldEmail          Field = "email"
	FieldIPAddress      Field = "ip_address"
	FieldUsername       Field = "username"
	FieldPassword       Field = "password"
	FieldHashedPassword Field = "hashed_password"
	FieldName           Field = "name"
	FieldDomain         Field = "domain"
	FieldVin            Field = "vin"
	FieldPhone          Field = "phone"
	FieldAddress        Field = "address"
)

// Query amarra um campo pesquisável a uma expressão de busca.
//
// Não há validação local de vazio/aninhamento: query malformada é
// rejeitada apenas pelo serviço remoto (ver ErrInvalidQuery).
type Query struct {
	Field Field
	Term  SearchType
}

// Render produz "campo:expressão" na sintaxe do provedor.
func (q Query) Render() string {
	return string(q.Field) + ":" + q.Term.Render()
}

// Construtores por campo, um para cada campo suportado pelo provedor.

func Email(t SearchType) Query          { return Query{Field: FieldEmail, Term: t} }
func IPAddress(t SearchType) Query      { return Query{Field: FieldIPAddress, Term: t} }
func Username(t SearchType) Query       { return Query{Field: FieldUsername, Term: t} }
func Password(t SearchType) Query       { return Query{Field: FieldPassword, Term: t} }
func HashedPassword(t SearchType) Query { return Query{Field: FieldHashedPassword, Term: t} }
func Name(t SearchType) Query           { return Query{Field: FieldName, Term: t} }
func Domain(t SearchType) Query         { return Query{Field: FieldDomain, Term: t} }
func Vin(t SearchType) Query            { return Query{Field: FieldVin, Term: t} }
func Phone(t SearchType) Query          { return Query{Field: FieldPhone, Term: t} }
func Address(t SearchType) Query        { return Query{Field: FieldAddress, Term: t} }
