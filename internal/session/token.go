package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// セッションIDをHS256署名付きトークンとしてCookieに載せる。
// 改ざんされたIDでストアを引かせないための署名。

func EncodeToken(secret []byte, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

func DecodeToken(secret []byte, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session token")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid session token")
	}

	return sid, nil
}
