package user

import "time"

// User is created on first successful OTP verification.
type User struct {
	id        int64
	phone     Phone
	createdAt time.Time
}

func NewUser(phone Phone, now time.Time) *User {
	return &User{
		phone:     phone,
		createdAt: now,
	}
}

func Reconstruct(id int64, phone Phone, createdAt time.Time) *User {
	return &User{id: id, phone: phone, createdAt: createdAt}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Phone() Phone         { return u.phone }
func (u *User) CreatedAt() time.Time { return u.createdAt }
