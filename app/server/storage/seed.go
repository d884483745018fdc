package storage

import (
	"context"
	"fmt"
	"github.com/alexedwards/argon2id"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
)

type AdminSeed struct {
	Username string
	Password string // 明文，写入前哈希
	Email    string
}

// SeedAdmin 在没有任何管理员时创建初始管理员。已有管理员时返回 nil 。
func SeedAdmin(ctx context.Context, st Storage, seed AdminSeed) (*models.AdminUser, error) {
	// 查询现有管理员
	users, err := st.ListAdminUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	} else if len(users) > 0 {
		return nil, nil
	}

	// 创建密码
	hash, err := argon2id.CreateHash(seed.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	// 插入记录
	user, err := st.CreateAdminUser(ctx, models.AdminUserInput{
		Username: seed.Username,
		Password: hash,
		Email:    seed.Email,
		Role:     models.DefaultAdminRole,
		IsActive: utils.P(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return user, nil
}

// SeedSampleNews 给空的新闻列表放一条示例，让首页不至于空白
func SeedSampleNews(ctx context.Context, st Storage, authorID string) error {
	news, err := st.ListNews(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list news: %w", err)
	} else if len(news) > 0 {
		return nil
	}

	if _, err = st.CreateNews(ctx, models.NewsInput{
		Title:     "Welcome to the Student Society",
		Excerpt:   "The society website is live. Follow this page for news, events and publications.",
		Content:   "The society website is now live. Upcoming workshops, seminars and field trips will be announced here, together with publications from our members and the latest gallery uploads. Membership inductions open each semester through the induction form.",
		Category:  "Announcement",
		Featured:  true,
		Published: true,
	}, &authorID); err != nil {
		return fmt.Errorf("failed to create sample news: %w", err)
	}

	return nil
}
