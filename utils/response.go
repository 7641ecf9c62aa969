package utils

// Códigos de estado de la aplicación
// El errno distingue el resultado; el status HTTP queda en 200 salvo en el
// middleware de autenticación
const (
	RetOK         = "0"    // todo bien
	RetDBErr      = "4001" // error de lectura/escritura en la base
	RetNoData     = "4002" // consulta válida pero sin resultados
	RetDataErr    = "4004" // dato presente pero inválido (ej: precio no numérico)
	RetSessionErr = "4101" // sesión/token inválido
	RetParamErr   = "4103" // parámetros faltantes o mal formados
	RetServerErr  = "4500" // error interno no clasificado
)

// Response es el sobre uniforme de todas las respuestas
// Data se omite en los errores
type Response struct {
	Errno  string      `json:"errno"`
	Errmsg string      `json:"errmsg"`
	Data   interface{} `json:"data,omitempty"`
}

// OK construye una respuesta exitosa con payload
func OK(data interface{}) Response {
	return Response{Errno: RetOK, Errmsg: "OK", Data: data}
}

// Error construye una respuesta de error con código y mensaje
func Error(errno, errmsg string) Response {
	return Response{Errno: errno, Errmsg: errmsg}
}
