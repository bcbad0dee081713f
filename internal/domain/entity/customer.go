package entity

// Customer representa un cliente del libro de cuentas.
// El ID se asigna al crear y nunca cambia; el saldo pendiente (due) no se
// guarda aquí: siempre se recalcula a partir de sus transacciones.
type Customer struct {
	ID      string
	Name    string
	Phone   string
	Address string
	Website string
}
