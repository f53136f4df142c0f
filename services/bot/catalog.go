package bot

import "github.com/HBKLXNDR/telegram-consultant/models"

// CatalogService is one entry of the studio's service list.
type CatalogService struct {
	Name        string
	Description string
	Price       string
}

// Services offered, rendered by the services and prices replies.
var Services = []CatalogService{
	{
		Name:        "Розробка веб-сайтів",
		Description: "Створення сучасних та адаптивних веб-сайтів",
		Price:       "від 500$",
	},
	{
		Name:        "Розробка інтернет-магазинів",
		Description: "Повнофункціональні e-commerce рішення",
		Price:       "від 1000$",
	},
	{
		Name:        "Технічна підтримка",
		Description: "Обслуговування та оновлення веб-сайтів",
		Price:       "від 100$/місяць",
	},
}

// Commands registered with Telegram at startup and listed by /help.
var Commands = []models.BotCommand{
	{Command: "start", Description: "Почати роботу з ботом"},
	{Command: "help", Description: "Показати доступні команди"},
	{Command: "services", Description: "Наші послуги"},
	{Command: "prices", Description: "Прайс-лист"},
	{Command: "portfolio", Description: "Наше портфоліо"},
	{Command: "contact", Description: "Зв'язатися з нами"},
	{Command: "form", Description: "Відкрити форму замовлення"},
	{Command: "shop", Description: "Відкрити магазин"},
}
