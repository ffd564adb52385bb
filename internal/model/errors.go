package model

import "errors"

var (
	// ErrInvalidUpgradeLevel — уровень заточки вне диапазона оружия.
	ErrInvalidUpgradeLevel = errors.New("invalid upgrade level")
	// ErrInvalidConfig — некорректные параметры фильтра или расчёта.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrMalformedWeapon — в записи оружия нет данных, нужных калькулятору.
	ErrMalformedWeapon = errors.New("malformed weapon record")
	// ErrInvalidAttributes — значение атрибута вне [1, 99].
	ErrInvalidAttributes = errors.New("invalid attributes")
)
