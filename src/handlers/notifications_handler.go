package handlers

import (
	"net/http"

	"wonderpay-server/src/notify"
)

// ListNotifications returns the live toast feed, newest first.
func ListNotifications(center *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, center.List())
	}
}
