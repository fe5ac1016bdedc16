package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/avantivendas/visitas-api/internal/models"
)

// Hash bcrypt de custo padrão usado quando o login não existe: a
// comparação roda do mesmo jeito, e o tempo de resposta não conta se o
// login era conhecido ou não.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// GormStore autentica contra a tabela usuarios, com senhas bcrypt.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Authenticate(
	ctx context.Context,
	login, senha string,
) (*Principal, error) {

	var user models.Usuario
	if err := s.db.WithContext(ctx).
		Where("login = ?", login).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(senha))
			return nil, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return nil, nil
	}

	return &Principal{Login: user.Login, Nome: user.Nome, Role: user.Role}, nil
}

// SeedIfEmpty insere a equipe de fábrica, com salts bcrypt novos, apenas
// quando a tabela está vazia. A guarda é só a contagem de linhas: dois
// processos correndo contra uma tabela vazia podem inserir em dobro.
// Aceitável porque o banco é de um único operador e vive muito.
func (s *GormStore) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Count(&count).Error; err != nil {
		return fmt.Errorf("count usuarios: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, u := range SeedUsers() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Senha), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash senha for %s: %w", u.Login, err)
		}

		user := models.Usuario{
			Login: u.Login,
			Nome:  u.Nome,
			Senha: string(hashed),
			Role:  u.Role,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return fmt.Errorf("seed usuario %s: %w", u.Login, err)
		}
	}
	return nil
}
