package usecase

import (
	"strings"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
)

// FilterProperties возвращает объявления, у которых запрос в нижнем регистре
// входит подстрокой в title, address или description. Пустой запрос
// (или из одних пробелов) возвращает список без изменений. Порядок сохраняется.
func FilterProperties(properties []*domain.Property, query string) []*domain.Property {
	if strings.TrimSpace(query) == "" {
		return properties
	}

	q := strings.ToLower(query)
	result := make([]*domain.Property, 0, len(properties))
	for _, p := range properties {
		if matchesQuery(p, q) {
			result = append(result, p)
		}
	}
	return result
}

func matchesQuery(p *domain.Property, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(p.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Address), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery)
}
