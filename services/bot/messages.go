package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// button captions
const (
	BtnOrderSite    = "🌐 Замовити сайт"
	BtnLeaveRequest = "📝 Залишити заявку"
	BtnServices     = "📋 Наші послуги"
	BtnPrices       = "💰 Прайс-лист"
	BtnContact      = "📞 Зв'язатися з нами"
	BtnPortfolio    = "🎯 Портфоліо"
	BtnOpenForm     = "Відкрити форму"
	BtnOpenShop     = "Замовити сайт"
)

// messages
const (
	MsgStart = "Вітаємо! 👋\n\n" +
		"Ми допоможемо вам створити сучасний веб-сайт для вашого бізнесу. " +
		"Використовуйте команду /help, щоб побачити всі доступні опції.\n\n" +
		"Що б ви хотіли зробити?"

	MsgFormPrompt = "Щоб відкрити форму, будь ласка, натисніть на кнопку нижче:"
	MsgShopPrompt = "Щоб перейти до нашого магазину, натисніть кнопку нижче:"

	MsgLeadReceived = "Дякуємо за заявку! 🎉\n" +
		"Ми зв'яжемося з вами найближчим часом."

	MsgPurchaseTitle = "Успішна купівля"
)

// MsgHelp lists the registered commands.
func MsgHelp() string {
	lines := make([]string, len(Commands))
	for i, cmd := range Commands {
		lines[i] = fmt.Sprintf("/%s - %s", cmd.Command, cmd.Description)
	}
	return "Доступні команди:\n\n" + strings.Join(lines, "\n") +
		"\n\nЯкщо у вас виникли питання, звертайтесь до нашої підтримки."
}

// MsgServices renders the service catalog (Markdown).
func MsgServices() string {
	blocks := make([]string, len(Services))
	for i, s := range Services {
		blocks[i] = fmt.Sprintf("*%s*\n%s\nЦіна: %s", s.Name, s.Description, s.Price)
	}
	return "Наші послуги:\n\n" + strings.Join(blocks, "\n\n")
}

// MsgPrices renders the price list.
func MsgPrices() string {
	lines := make([]string, len(Services))
	for i, s := range Services {
		lines[i] = fmt.Sprintf("%s: %s", s.Name, s.Price)
	}
	return "Прайс-лист:\n\n" + strings.Join(lines, "\n") +
		"\n\nДля детальної інформації звертайтесь до менеджера."
}

// MsgPortfolio message
func MsgPortfolio(homepageURL string) string {
	return fmt.Sprintf("Наше портфоліо доступне на сайті: %s/portfolio\n\n"+
		"Також ви можете переглянути наші проекти в телеграм каналі: @our_portfolio", homepageURL)
}

// MsgContact renders the contact card (Markdown).
func MsgContact(homepageURL string) string {
	return "📞 *Наші контакти:*\n\n" +
		"🔹 *Телефон:* +380123456789\n" +
		"🔹 *Email:* contact@example.com\n" +
		"🔹 *Telegram:* @support_manager\n" +
		"🔹 *Веб-сайт:* " + homepageURL + "\n\n" +
		"⏰ *Графік роботи:*\n" +
		"Пн-Пт: 9:00 - 18:00\n" +
		"Сб-Нд: Вихідний\n\n" +
		"💬 Оберіть зручний спосіб зв'язку:"
}

// MsgLeadNotification is the staff alert for a new lead.
func MsgLeadNotification(lead models.Lead, at time.Time) string {
	return fmt.Sprintf("🔔 Нова заявка!\n\n"+
		"👤 Ім'я: %s\n"+
		"📧 Email: %s\n"+
		"📱 Телефон: %s\n"+
		"🕒 Час: %s", lead.Name, lead.Email, lead.Number, localTimestamp(at))
}

// MsgFollowUp is the delayed message sent to the requester after a lead.
func MsgFollowUp(staffUsername, homepageURL string) string {
	return fmt.Sprintf("📢 Всю інформацію Ви отримаєте у цьому чаті: %s\n\n"+
		"⏳ Поки наш менеджер займається обробкою Вашої заявки, "+
		"завітайте на наш сайт! %s\n\n"+
		"💡 Там ви знайдете більше інформації про наші послуги та портфоліо.", staffUsername, homepageURL)
}

// localTimestamp formats at for the studio's timezone; server time when the
// zone database lacks the location.
func localTimestamp(at time.Time) string {
	if location, err := time.LoadLocation("Europe/Kyiv"); err == nil {
		at = at.In(location)
	}
	return at.Format("02.01.2006, 15:04:05")
}
