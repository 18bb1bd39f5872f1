package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/timeutil"
)

// Buyer-facing message templates. Everything the bot says in chat lives
// here so the wording can be reviewed in one place.

const (
	replyContactAdmin = "Не удалось определить лот по заказу. Напишите !админ, продавец подключится."
	replyUnmappedLot  = "Этот лот ещё не привязан к аккаунту. Напишите !админ, продавец подключится."
	replyNoFree       = "Сейчас нет свободного аккаунта на замену. Напишите !админ, продавец подключится."
	replyAdminCalled  = "Продавец позван. Ожидайте ответа в этом чате."
	replyPaused       = "Аренда на паузе, коды недоступны. Напишите !продолжить, чтобы снять паузу."
	replyFrozenAdmin  = "Аккаунт заморожен продавцом. Напишите !админ."
	replyNoRental     = "У вас нет активной аренды. Оплатите лот, чтобы получить аккаунт."
	replyNoStock      = "Свободных лотов сейчас нет."
	replyPauseOK      = "Пауза включена. Таймер аренды остановлен (максимум на 1 час)."
	replyResumeOK     = "Пауза снята, таймер продолжил отсчёт."
	replyNotPaused    = "Аренда не на паузе."
	replyCancelOK     = "Аренда отменена, аккаунт освобождён."
	replyBonusEmpty   = "На бонусном счёте недостаточно минут (нужно 60)."
	replyReplaceLate  = "Замена доступна только в первые 10 минут после первого !код."
	replyReplaceLimit = "Замену можно запрашивать не чаще одного раза в час."
	replyHelp         = "Команды: !сток, !акк, !код, !продлить, !пауза, !продолжить, !бонус, !лпзамена, !отмена, !админ"
	replyPauseNeeded  = "Таймер ещё не запущен — пауза доступна после первого !код."
)

func replyBlacklistBlocked(paid, threshold int) string {
	remaining := threshold - paid
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf(
		"Вы в чёрном списке. Зачтено %d мин из %d. Осталось оплатить ещё %d мин, и доступ восстановится автоматически.",
		paid, threshold, remaining)
}

const replyUnblacklisted = "Доступ восстановлен, чёрный список снят. Спасибо! Оплаченный заказ будет выдан как обычно."

func replyCredentials(acc *ent.Account, login, password string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Аккаунт: %s\nЛогин: %s\nПароль: %s\n", acc.DisplayName, login, password)
	b.WriteString("Напишите !код чтобы получить код входа — с этого момента пойдёт таймер аренды.")
	return b.String()
}

func replyIssued(acc *ent.Account, login, password string, minutes int) string {
	return fmt.Sprintf("Заказ принят, аренда на %s.\n%s",
		formatMinutes(minutes), replyCredentials(acc, login, password))
}

func replyReplacement(acc *ent.Account, login, password string, minutes int) string {
	return fmt.Sprintf("Выдана замена, аренда на %s.\n%s",
		formatMinutes(minutes), replyCredentials(acc, login, password))
}

func replyExtended(minutes int, remaining time.Duration) string {
	return fmt.Sprintf("Аренда продлена на %s. Осталось: %s.",
		formatMinutes(minutes), formatDuration(remaining))
}

func replyGuardCode(acc *ent.Account, code string) string {
	return fmt.Sprintf("%s (%s): %s", acc.DisplayName, acc.Login, code)
}

func replyTimerStarted(minutes int) string {
	return fmt.Sprintf("Таймер запущен, аренда на %s.", formatMinutes(minutes))
}

func replyRemaining(acc *ent.Account, remaining time.Duration) string {
	if remaining <= 0 {
		return fmt.Sprintf("%s: время аренды вышло.", acc.DisplayName)
	}
	return fmt.Sprintf("%s: осталось %s.", acc.DisplayName, formatDuration(remaining))
}

func replyExtendHint(lotURL string) string {
	if lotURL == "" {
		return "Чтобы продлить аренду, оплатите тот же лот ещё раз — продление применится автоматически."
	}
	return fmt.Sprintf("Чтобы продлить аренду, оплатите лот ещё раз: %s — продление применится автоматически.", lotURL)
}

func replyExpired(orderID string) string {
	msg := "Время аренды вышло, аккаунт освобождён. Спасибо за заказ!"
	if orderID != "" {
		msg += fmt.Sprintf(" Подтвердите заказ: https://funpay.com/orders/%s/", orderID)
	}
	return msg
}

func replyExpireSoon(remaining time.Duration) string {
	return fmt.Sprintf("Внимание: аренда закончится через %s. Продлить: !продлить.", formatDuration(remaining))
}

const replyMatchDeferred = "Вы в матче — завершение аренды отложено до конца игры."

const (
	replyFrozenNotice   = "Аккаунт заморожен продавцом, вход временно недоступен. Напишите !админ при вопросах."
	replyUnfrozenNotice = "Аккаунт разморожен, можно продолжать. Напишите !код для кода входа."
)

func replyPauseExpired() string {
	return "Пауза длилась больше часа и снята автоматически, таймер продолжил отсчёт."
}

func replyBonusApplied(minutes, balance int) string {
	return fmt.Sprintf("Начислено %d бонусных минут к аренде. Остаток на счёте: %d мин.", minutes, balance)
}

func replyBonusBalance(balance int) string {
	return fmt.Sprintf("На бонусном счёте %d мин. Спишите 60 мин командой !бонус <ID аккаунта>.", balance)
}

func replyReviewBonus(minutes, balance int) string {
	return fmt.Sprintf("Спасибо за отзыв! Начислено %d бонусных минут (баланс: %d мин). Спишите их командой !бонус.", minutes, balance)
}

func replyBonusReverted(minutes, balance int) string {
	return fmt.Sprintf("Отзыв удалён, бонус за него снят: -%d мин (баланс: %d мин).", minutes, balance)
}

func replyChooseRental(accounts []*ent.Account, command string) string {
	var b strings.Builder
	b.WriteString("У вас несколько аренд, укажите ID аккаунта:\n")
	for _, acc := range accounts {
		fmt.Fprintf(&b, "%d — %s\n", acc.ID, acc.DisplayName)
	}
	fmt.Fprintf(&b, "Например: %s %d", command, accounts[0].ID)
	return b.String()
}

func formatMinutes(minutes int) string {
	return formatDuration(time.Duration(minutes) * time.Minute)
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d ч %d мин", h, m)
	case h > 0:
		return fmt.Sprintf("%d ч", h)
	default:
		return fmt.Sprintf("%d мин", m)
	}
}

// remainingFor computes how much rental time is left right now.
func remainingFor(acc *ent.Account) time.Duration {
	if acc.RentalStart == nil {
		return time.Duration(acc.RentalDurationMinutes) * time.Minute
	}
	start := *acc.RentalStart
	if acc.RentalFrozen && acc.RentalFrozenAt != nil {
		// While paused the clock is stopped at frozen_at.
		start = start.Add(time.Since(*acc.RentalFrozenAt))
	}
	return timeutil.Remaining(start, acc.RentalDurationMinutes, time.Now())
}
