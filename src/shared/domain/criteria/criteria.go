package criteria

// Criteria pattern compartido para búsquedas con filtros, ordenamiento y paginación.
// Los repositorios lo traducen a SQL mediante el conversor de infraestructura.

// Operator representa un operador de comparación soportado
type Operator string

const (
	OpEqual              Operator = "="
	OpNotEqual           Operator = "!="
	OpGreaterThan        Operator = ">"
	OpGreaterThanOrEqual Operator = ">="
	OpLessThan           Operator = "<"
	OpLessThanOrEqual    Operator = "<="
	OpLike               Operator = "LIKE"
	OpIsNull             Operator = "NULL"
	OpIsNotNull          Operator = "NOT NULL"
)

// Filter representa una condición individual sobre un campo
type Filter struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// NewFilter crea un nuevo filtro
func NewFilter(field string, operator Operator, value interface{}) Filter {
	return Filter{
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

// Filters agrupa un conjunto de filtros combinados con AND
type Filters struct {
	Items []Filter
}

// NewFilters crea un conjunto de filtros
func NewFilters(items ...Filter) Filters {
	return Filters{Items: items}
}

// Add agrega un filtro al conjunto
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// OrderType dirección del ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Order representa el ordenamiento de los resultados
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un nuevo ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento definido
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria combina filtros, ordenamiento y paginación
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}
