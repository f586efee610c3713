package commands

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/lovequartz/irene/irene/commands/admin"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands,
		Drop,
		Hunt,
		Daily,
		Weekly,
		Cooldowns,
		Balance,
		Profile,
		Inventory,
		Progress,
		Search,
		View,
		Favorite,
		Description,
		Gift,
		Pay,
		BagCmd,
		Shop,
		Market,
	)
	Commands = append(Commands, admin.Commands...)
}
