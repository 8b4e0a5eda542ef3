package model

// WeaponProfile — оружие с опциональным crit multiplier.
// Отсутствующий ключ crit_multiplier декодируется как absent.
type WeaponProfile struct {
	Name           string         `json:"name" yaml:"name"`
	CritMultiplier CritMultiplier `json:"crit_multiplier" yaml:"crit_multiplier"`
}

// CritDamageMultiplier returns the weapon's crit damage multiplier (1.0 if not configured).
func (w WeaponProfile) CritDamageMultiplier() float64 {
	return w.CritMultiplier.Multiplier()
}
