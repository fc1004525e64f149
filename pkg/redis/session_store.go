package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

const sessionKeyPrefix = "session:"

// SessionData is the token pair cached for a logged-in account.
type SessionData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SessionStore keeps login sessions in Redis, sealed with AES-GCM so a
// leaked cache dump exposes no tokens.
type SessionStore struct {
	aead cipher.AEAD
}

var (
	setSessionValue = Set
	getSessionValue = Get
	delSessionValue = Del
)

// NewSessionStore builds a store from a 64-hex-char (32 byte) key.
func NewSessionStore(keyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != 32 {
		return nil, errors.New("session encryption key must be 64 hex characters")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &SessionStore{aead: aead}, nil
}

// CreateSession seals the token pair and stores it under the session ID.
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, ttl time.Duration) error {
	plain, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sealed, err := s.seal(plain)
	if err != nil {
		return err
	}
	return setSessionValue(ctx, sessionKeyPrefix+sessionID, sealed, ttl)
}

// GetSession fetches and unseals the token pair for a session ID.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	sealed, err := getSessionValue(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	plain, err := s.open(sealed)
	if err != nil {
		return nil, err
	}
	var data SessionData
	if err := json.Unmarshal(plain, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DeleteSession drops the session, ending it everywhere.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return delSessionValue(ctx, sessionKeyPrefix+sessionID)
}

// seal encrypts the payload and prefixes the random nonce, hex encoded.
func (s *SessionStore) seal(plain []byte) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	return hex.EncodeToString(s.aead.Seal(nonce, nonce, plain, nil)), nil
}

func (s *SessionStore) open(sealedHex string) ([]byte, error) {
	raw, err := hex.DecodeString(sealedHex)
	if err != nil {
		return nil, err
	}
	if len(raw) < s.aead.NonceSize() {
		return nil, errors.New("sealed session payload too short")
	}
	nonce, box := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	return s.aead.Open(nil, nonce, box, nil)
}
