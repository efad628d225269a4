package handler

import (
	"os"

	"restaurant_manager/utils"
)

func frontendBase() string {
	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	return base
}

// notifyOperator queues a short internal notice to the operator mailbox.
func notifyOperator(subject string, lines []string) {
	to := os.Getenv("OPERATOR_EMAIL")
	if to == "" {
		return
	}
	utils.Dispatch(utils.EmailJob{
		To:       to,
		Subject:  subject,
		Template: "operator_notice.html",
		Data:     utils.OperatorNoticeData{Subject: subject, Lines: lines},
	})
}
