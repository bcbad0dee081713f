package ports

import "context"

// TextGenerator define el puerto de salida hacia el servicio de generación de
// texto. Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta
// interfaz. La capa de aplicación solo conoce este contrato, no el proveedor.
type TextGenerator interface {
	// Generate envía un prompt y devuelve el texto generado tal cual.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Generate(ctx context.Context, prompt string) (string, error)

	// Configured indica si el adaptador tiene credencial. La ausencia de API key
	// es una condición normal y manejada, no un error.
	Configured() bool
}
