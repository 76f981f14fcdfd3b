// Package docs Real Estate Listing Manager API.
//
// Сервис доски объявлений о недвижимости: список, карта Naver Maps,
// общий выбор между ними, панель деталей и форма создания.
//
// Основные возможности:
// - Список объявлений с поиском по подстроке
// - Маркеры карты для видимых объявлений
// - Синхронизированный выбор карта/список
// - Создание, редактирование и удаление объявлений
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
