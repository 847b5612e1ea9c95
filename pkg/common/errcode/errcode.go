/*
Copyright (c) 2022 PaddlePaddle Authors. All Rights Reserve.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errcode

// codes the jobpaste api puts in {"error":{"code"}}
const (
	ValidationError    = "VALIDATION_ERROR"
	EmailTaken         = "EMAIL_TAKEN"
	InvalidCredentials = "INVALID_CREDENTIALS"
	UserNotFound       = "USER_NOT_FOUND"
	WeakPassword       = "WEAK_PASSWORD"
	InvalidToken       = "INVALID_TOKEN"
	TokenExpired       = "TOKEN_EXPIRED"
	PermissionDenied   = "PERMISSION_DENIED"
	JobNotFound        = "JOB_NOT_FOUND"
	CompanyNotFound    = "COMPANY_NOT_FOUND"
	CategoryNotFound   = "CATEGORY_NOT_FOUND"
	DuplicatedName     = "DUPLICATED_NAME"
	CompanyInUse       = "COMPANY_IN_USE"
	CategoryInUse      = "CATEGORY_IN_USE"
	RateLimited        = "RATE_LIMITED"
	InternalError      = "INTERNAL_ERROR"
)

// fallback messages, by error class
const (
	MsgUnauthorized = "操作錯誤，請再試一次。"
	MsgForbidden    = "您沒有權限執行此操作，請重新登入。"
	MsgNotFound     = "指定的資訊不存在"
	MsgServer       = "伺服器發生錯誤，請稍後再試。"
	MsgNetwork      = "無法連線到伺服器，請檢查您的網絡連線。"
	MsgUnexpected   = "發生未知錯誤，請稍後再試。"
)

var errorMessage = map[string]string{
	ValidationError:    "輸入的資料格式不正確，請檢查後再試。",
	EmailTaken:         "此電子郵件已被註冊",
	InvalidCredentials: "電子郵件或密碼錯誤",
	UserNotFound:       "找不到此使用者",
	WeakPassword:       "密碼強度不足",
	InvalidToken:       "登入資訊無效，請重新登入。",
	TokenExpired:       "登入已逾時，請重新登入。",
	PermissionDenied:   "您沒有權限執行此操作，請重新登入。",
	JobNotFound:        "找不到指定的職缺",
	CompanyNotFound:    "找不到指定的公司",
	CategoryNotFound:   "找不到指定的分類",
	DuplicatedName:     "名稱已存在",
	CompanyInUse:       "此公司仍有關聯的職缺，無法刪除",
	CategoryInUse:      "此分類仍在使用中，無法刪除",
	RateLimited:        "請求過於頻繁，請稍後再試。",
	InternalError:      MsgServer,
}

var errorKind = map[string]Kind{
	ValidationError:    KindValidation,
	EmailTaken:         KindValidation,
	InvalidCredentials: KindAuth,
	UserNotFound:       KindNotFound,
	WeakPassword:       KindValidation,
	InvalidToken:       KindAuth,
	TokenExpired:       KindAuth,
	PermissionDenied:   KindAuth,
	JobNotFound:        KindNotFound,
	CompanyNotFound:    KindNotFound,
	CategoryNotFound:   KindNotFound,
	DuplicatedName:     KindValidation,
	CompanyInUse:       KindValidation,
	CategoryInUse:      KindValidation,
	RateLimited:        KindValidation,
	InternalError:      KindServer,
}

// Lookup returns the user facing message of code.
func Lookup(code string) (string, bool) {
	msg, ok := errorMessage[code]
	return msg, ok
}

func GetMessageByCode(code string) string {
	if msg, ok := errorMessage[code]; ok {
		return msg
	}
	return MsgUnexpected
}
