package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	PaystackSecret   string
	PaystackBaseURL  string
	GeoIPBaseURL     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	PaystackSecret = GetEnv("PAYSTACK_SECRET_KEY")
	PaystackBaseURL = GetEnv("PAYSTACK_BASE_URL", "https://api.paystack.co")
	GeoIPBaseURL = GetEnv("GEOIP_BASE_URL", "http://ip-api.com/json")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if PaystackSecret == "" {
		log.Println("⚠️ PAYSTACK_SECRET_KEY belum diset — webhook billing akan menolak semua request.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
