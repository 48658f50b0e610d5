package models

// Gender — пол в профиле.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// UserInfo — подробная информация о текущем пользователе.
type UserInfo struct {
	Username       string `json:"username"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Avatar         string `json:"avatar"`
	School         string `json:"school"`
	Gender         Gender `json:"gender"`
	IsFollowing    *bool  `json:"is_following"`
	ProfileBg      string `json:"profile_bg"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
}

// UserProfile — профиль другого пользователя.
type UserProfile struct {
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	School         string `json:"school"`
	ProfileBg      string `json:"profile_bg"`
	IsFollowing    bool   `json:"is_following"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
}

// UIDRequest — тело /user/profile.
type UIDRequest struct {
	UID *string `json:"uid"`
}

// UserUpdateRequest — тело /user/update, все поля необязательны.
type UserUpdateRequest struct {
	UID         *string `json:"uid"`
	Username    *string `json:"username"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Avatar      *string `json:"avatar"`
	School      *string `json:"school"`
	Gender      *string `json:"gender"`
	ProfileBg   *string `json:"profile_bg"`
	IsFollowing *bool   `json:"is_following"`
}

// UploadedMedia — адрес загруженного файла.
type UploadedMedia struct {
	Src string `json:"src"`
}

// SampleUserInfo возвращает заглушку информации о пользователе.
func SampleUserInfo() UserInfo {
	return UserInfo{
		Username:       "xxx",
		Phone:          "111",
		Email:          "xxx@qq.com",
		Avatar:         "https://xxxx",
		School:         "xxx",
		Gender:         GenderMale,
		ProfileBg:      "https://xxxx",
		FollowerCount:  1,
		FollowingCount: 1,
	}
}

// SampleUserProfile возвращает заглушку профиля.
func SampleUserProfile() UserProfile {
	return UserProfile{
		Username:       "xxx",
		Avatar:         "https://xxxx",
		School:         "xxx",
		ProfileBg:      "https://xxxx",
		IsFollowing:    false,
		FollowerCount:  1,
		FollowingCount: 1,
	}
}
