package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/iudanet/recordsync/internal/models"
)

// Fingerprint вычисляет BLAKE2b-256 хеш набора атрибутов.
// Ключи сериализуются в отсортированном порядке, поэтому результат
// не зависит от порядка обхода map.
func Fingerprint(attributes models.Attributes) ([]byte, error) {
	if attributes == nil {
		attributes = models.Attributes{}
	}

	data, err := json.Marshal(attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attributes: %w", err)
	}

	sum := blake2b.Sum256(data)
	return sum[:], nil
}

// MatchFingerprint сообщает, совпадает ли хеш атрибутов с сохраненным.
// Пустой сохраненный хеш не совпадает ни с чем.
func MatchFingerprint(attributes models.Attributes, stored []byte) bool {
	if len(stored) == 0 {
		return false
	}

	computed, err := Fingerprint(attributes)
	if err != nil {
		return false
	}

	return bytes.Equal(computed, stored)
}
