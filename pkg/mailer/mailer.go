// Файл: pkg/mailer/mailer.go
//
// Исходящая почта работает по принципу "fire-and-forget": вызывающий кладёт
// письмо в очередь и сразу продолжает работу. Фоновый воркер делает ровно одну
// попытку доставки; любая ошибка логируется и проглатывается, повторов нет.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"maintenance-system/pkg/config"
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Enqueue(msg Message)
}

type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
	queue  chan Message
	wg     sync.WaitGroup
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	m := &SMTPMailer{
		cfg:    cfg,
		logger: logger,
		queue:  make(chan Message, 64),
	}
	m.wg.Add(1)
	go m.worker()
	return m
}

// Enqueue никогда не блокирует вызывающего: при переполненной очереди
// письмо отбрасывается с предупреждением в логе.
func (m *SMTPMailer) Enqueue(msg Message) {
	select {
	case m.queue <- msg:
	default:
		m.logger.Warn("Очередь почты переполнена, письмо отброшено",
			zap.Strings("recipients", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}

// Close останавливает воркер, дождавшись отправки уже поставленных писем.
func (m *SMTPMailer) Close() {
	close(m.queue)
	m.wg.Wait()
}

func (m *SMTPMailer) worker() {
	defer m.wg.Done()
	for msg := range m.queue {
		m.send(msg)
	}
}

func (m *SMTPMailer) send(msg Message) {
	if len(msg.To) == 0 {
		return
	}
	if m.cfg.Username == "" || m.cfg.Password == "" {
		m.logger.Warn("SMTP_USER или SMTP_PASSWORD не заданы, письмо не отправлено",
			zap.Strings("recipients", msg.To))
		return
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		m.logger.Error("Не удалось подключиться к SMTP-серверу", zap.String("addr", addr), zap.Error(err))
		return
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			m.logger.Error("Ошибка STARTTLS", zap.Error(err))
			return
		}
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		m.logger.Error("Ошибка аутентификации на SMTP-сервере", zap.Error(err))
		return
	}

	if err := client.Mail(m.cfg.Username); err != nil {
		m.logger.Error("Ошибка команды MAIL FROM", zap.Error(err))
		return
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			m.logger.Error("Ошибка команды RCPT TO", zap.String("recipient", rcpt), zap.Error(err))
			return
		}
	}

	w, err := client.Data()
	if err != nil {
		m.logger.Error("Ошибка команды DATA", zap.Error(err))
		return
	}
	if _, err := w.Write([]byte(m.buildMessage(msg))); err != nil {
		m.logger.Error("Ошибка записи тела письма", zap.Error(err))
		_ = w.Close()
		return
	}
	if err := w.Close(); err != nil {
		m.logger.Error("Ошибка завершения передачи письма", zap.Error(err))
		return
	}

	if err := client.Quit(); err != nil {
		m.logger.Warn("Ошибка закрытия SMTP-сессии", zap.Error(err))
		return
	}

	m.logger.Info("Письмо успешно отправлено",
		zap.Int("recipients", len(msg.To)),
		zap.String("subject", msg.Subject),
	)
}

func (m *SMTPMailer) buildMessage(msg Message) string {
	var sb strings.Builder
	sb.WriteString("From: " + m.cfg.Username + "\r\n")
	sb.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	sb.WriteString("Subject: " + msg.Subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.Body)
	return sb.String()
}
