package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/auth"
	"github.com/denis333rus/procuratyra/internal/config"
	"github.com/denis333rus/procuratyra/internal/db"
	"github.com/denis333rus/procuratyra/internal/models"
)

// Провижининг привилегированного аккаунта и генерация bcrypt-хэшей для
// config.yml (admin.password_hash / prosecutor.password_hash).
func main() {
	username := flag.String("username", "admin", "логин аккаунта")
	password := flag.String("password", "", "пароль (обязателен)")
	fullName := flag.String("name", "Администратор", "полное имя")
	role := flag.String("role", models.RoleAdmin, "роль: admin, prosecutor или employee")
	hashOnly := flag.Bool("hash-only", false, "только напечатать хэш, без записи в БД")
	flag.Parse()

	if *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := auth.ValidatePassword(*password); err != nil {
		log.Fatalf("Недопустимый пароль: %v", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Не удалось захэшировать пароль: %v", err)
	}

	if *hashOnly {
		fmt.Println(hash)
		return
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Не удалось прочитать конфигурацию: %v", err)
	}

	database, err := db.New(cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе: %v", err)
	}
	defer database.Close()

	if err := database.CreateUser(*username, hash, *fullName, *role); err != nil {
		log.Fatalf("Не удалось создать аккаунт: %v", err)
	}

	fmt.Println("Аккаунт создан")
	fmt.Printf("Логин: %s\n", *username)
	fmt.Printf("Роль:  %s\n", *role)
	fmt.Printf("Хэш пароля (для config.yml): %s\n", hash)
}
