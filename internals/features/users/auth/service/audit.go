// file: internals/features/users/auth/service/audit.go
package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	ua "github.com/mileusna/useragent"
	"gorm.io/gorm"

	authModel "litefarm_backend/internals/features/users/auth/model"
)

/* ==========================
   Login audit context
========================== */

// LoginAuditContext carries everything a failure-audit row needs. It is
// built ONCE per login request, before any credential check, so both the
// mismatch and the unexpected-error branches can write a complete row.
// (The JS ancestor computed these inside the happy path and referenced
// them out of scope in its catch block; the error branch could itself
// throw. Building the context up front removes that failure mode.)
type LoginAuditContext struct {
	IP           string
	Languages    []string
	Browser      string
	BrowserVer   string
	OS           string
	OSVersion    string
	DeviceModel  *string
	DeviceType   string
	ScreenWidth  int
	ScreenHeight int
}

// BuildLoginAudit derives the audit context from the request.
func BuildLoginAudit(c *fiber.Ctx, screenWidth, screenHeight int) LoginAuditContext {
	parsed := ua.Parse(c.Get(fiber.HeaderUserAgent))

	ctx := LoginAuditContext{
		IP:           c.IP(),
		Languages:    acceptedLanguages(c.Get(fiber.HeaderAcceptLanguage)),
		Browser:      parsed.Name,
		BrowserVer:   parsed.Version,
		OS:           parsed.OS,
		OSVersion:    parsed.OSVersion,
		DeviceType:   deviceType(parsed),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	if parsed.Device != "" {
		d := parsed.Device
		ctx.DeviceModel = &d
	}
	return ctx
}

// WriteLoginAudit persists one audit row. Audit failures are logged, not
// propagated: a broken audit path must never mask the login response.
func WriteLoginAudit(db *gorm.DB, userID string, audit LoginAuditContext, reason string) {
	row := authModel.UserLog{
		UserID:           userID,
		IP:               audit.IP,
		Languages:        audit.Languages,
		Browser:          audit.Browser,
		BrowserVersion:   audit.BrowserVer,
		OS:               audit.OS,
		OSVersion:        audit.OSVersion,
		DeviceModel:      audit.DeviceModel,
		DeviceType:       audit.DeviceType,
		ScreenWidth:      audit.ScreenWidth,
		ScreenHeight:     audit.ScreenHeight,
		ReasonForFailure: reason,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[ERROR] login audit write failed: %v", err)
	}
}

// acceptedLanguages splits an Accept-Language header into its offers,
// most preferred first, quality weights stripped.
func acceptedLanguages(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		lang := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if lang != "" {
			out = append(out, lang)
		}
	}
	return out
}

func deviceType(parsed ua.UserAgent) string {
	switch {
	case parsed.Mobile:
		return "mobile"
	case parsed.Tablet:
		return "tablet"
	case parsed.Bot:
		return "bot"
	case parsed.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
