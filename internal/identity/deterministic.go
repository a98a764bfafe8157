package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func ShopUUID(shopName string) uuid.UUID {
	return UUID("linkbay:shop:" + strings.ToLower(strings.TrimSpace(shopName)))
}

func PageUUID(shopName, slug, language string) uuid.UUID {
	return UUID("linkbay:page:" + strings.ToLower(strings.TrimSpace(shopName)) + ":" + strings.ToLower(strings.TrimSpace(slug)) + ":" + strings.ToLower(strings.TrimSpace(language)))
}

func WebSettingsUUID(shopName string) uuid.UUID {
	return UUID("linkbay:web_settings:" + strings.ToLower(strings.TrimSpace(shopName)))
}

func ShopAddonUUID(shopName string, addonID int64) uuid.UUID {
	return UUID("linkbay:shop_addon:" + strings.ToLower(strings.TrimSpace(shopName)) + ":" + strconv.FormatInt(addonID, 10))
}

func NavbarLinkUUID(shopName string, position int) uuid.UUID {
	return UUID("linkbay:navbar_link:" + strings.ToLower(strings.TrimSpace(shopName)) + ":" + strconv.Itoa(position))
}
