package eimzo

// StatusOK is the domain status reported by the e-imzo server inside a 200
// response when the operation actually succeeded. Anything else is a domain
// failure despite the transport-level success.
const StatusOK = 1

// unknownCodeMessage covers every status code missing from a table. New
// upstream codes degrade to this instead of leaking raw numbers to users.
const unknownCodeMessage = "Неизвестная ошибка, обратитесь к администратору"

// verifyMessages translates document verification status codes. Keyed to the
// e-imzo server's PKCS#7 verifier.
var verifyMessages = map[int]string{
	-1:  "Не удалось прочитать документ PKCS#7",
	-10: "Не верный формат документа PKCS#7",
	-11: "Сертификат недействителен",
	-12: "Подпись недействительна",
	-20: "Метка времени недействительна",
}

// loginMessages translates challenge-response authentication status codes.
// Deliberately a separate table from verifyMessages: the shared codes happen
// to coincide today, and the auth-only codes must never surface on the
// verification path.
var loginMessages = map[int]string{
	-1:  "Не удалось прочитать документ PKCS#7",
	-5:  "Не удалось проверить подпись",
	-10: "Не верный формат документа PKCS#7",
	-11: "Сертификат недействителен",
	-12: "Подпись недействительна",
	-20: "Срок действия challenge истек",
}

// VerifyMessage returns the user-facing text for a verification status code.
func VerifyMessage(code int) string {
	if msg, ok := verifyMessages[code]; ok {
		return msg
	}
	return unknownCodeMessage
}

// LoginMessage returns the user-facing text for an authentication status code.
func LoginMessage(code int) string {
	if msg, ok := loginMessages[code]; ok {
		return msg
	}
	return unknownCodeMessage
}
