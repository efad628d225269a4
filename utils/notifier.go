package utils

import "log"

// EmailJob is one outbound notification. Delivery is best effort: jobs are
// queued without waiting, failures are logged and never reach the caller.
type EmailJob struct {
	To          string
	Subject     string
	Template    string
	Data        any
	Attachments []Attachment
}

var emailJobs = make(chan EmailJob, 256)

// Dispatch queues a notification without blocking. If the queue is full the
// job is dropped with a log line; business state has already been persisted.
func Dispatch(job EmailJob) {
	select {
	case emailJobs <- job:
	default:
		log.Printf("notification queue full, dropping mail to %s (%s)", job.To, job.Subject)
	}
}

// StartNotificationWorker drains the queue on a single goroutine.
func StartNotificationWorker() {
	go func() {
		for job := range emailJobs {
			if job.To == "" {
				continue
			}
			if err := SendTemplateEmail(job.To, job.Subject, job.Template, job.Data, job.Attachments); err != nil {
				log.Printf("send mail to %s failed: %v", job.To, err)
			}
		}
	}()
}
