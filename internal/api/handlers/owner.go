package handlers

import "net/http"

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgMissingOwnerID = "ID владельца обязателен"
	msgForbidden      = "доступ запрещен"
)

// AuthorizeOwner проверяет, что владелец из пути совпадает с аутентифицированным пользователем.
// При false ответ уже записан.
func AuthorizeOwner(w http.ResponseWriter, ownerID, userID string, authenticated bool) bool {
	switch {
	case ownerID == "":
		RespondBadRequest(w, msgMissingOwnerID)
		return false
	case !authenticated:
		RespondUnauthorized(w, msgMissingUserID)
		return false
	case userID != ownerID:
		RespondForbidden(w, msgForbidden)
		return false
	}
	return true
}
