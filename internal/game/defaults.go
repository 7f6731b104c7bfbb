package game

// Default returns the stock game balance: reward table, ten levels, eight
// arenas, five daily goals, and the streak and rest-day-discipline tuning.
// Callers that want different balance construct their own Config.
func Default() Config {
	return Config{
		Rewards: []XPReward{
			{Action: ActionWeightLog, Description: "Log daily weight", BaseXP: 50},
			{Action: ActionCalorieLog, Description: "Log calories (eaten or burnt)", BaseXP: 25},
			{Action: ActionWorkoutCardio, Description: "Complete cardio session", BaseXP: 75, Multiplier: 1.2},
			{Action: ActionWorkoutStrength, Description: "Complete strength training", BaseXP: 75, Multiplier: 1.2},
			{Action: ActionWorkoutBoth, Description: "Complete both cardio and strength", BaseXP: 150, Multiplier: 1.3},
			{Action: ActionCalorieDeficitGoal, Description: "Meet daily calorie deficit goal", BaseXP: 100},
			{Action: ActionCalorieBurnGoal, Description: "Meet daily calorie burn goal", BaseXP: 80},
			{Action: ActionCardioDurationGoal, Description: "Meet cardio duration goal", BaseXP: 60},
			{Action: ActionStrengthDurationGoal, Description: "Meet strength duration goal", BaseXP: 60},
			{Action: ActionStreakBonus, Description: "Consecutive day bonus", BaseXP: 25, Multiplier: 1.1},
		},
		Levels: []LevelThreshold{
			{Level: 1, XPRequired: 0, Title: "ROOKIE", Description: "Just starting out", Color: "#808080"},
			{Level: 2, XPRequired: 500, Title: "TRAINEE", Description: "Learning the ropes", Color: "#9d4edd"},
			{Level: 3, XPRequired: 1000, Title: "OPERATOR", Description: "Getting serious", Color: "#00a8ff"},
			{Level: 4, XPRequired: 2000, Title: "VETERAN", Description: "Proven dedication", Color: "#00ff6a"},
			{Level: 5, XPRequired: 3500, Title: "ELITE", Description: "Top performer", Color: "#ff6a00"},
			{Level: 6, XPRequired: 5500, Title: "MASTER", Description: "Fitness master", Color: "#ffd700"},
			{Level: 7, XPRequired: 8000, Title: "LEGEND", Description: "Legendary status", Color: "#ff2d2d"},
			{Level: 8, XPRequired: 11000, Title: "CHAMPION", Description: "Champion level", Color: "#ff00ff"},
			{Level: 9, XPRequired: 15000, Title: "TITAN", Description: "Titan of fitness", Color: "#00ffff"},
			{Level: 10, XPRequired: 20000, Title: "ULTIMATE", Description: "Ultimate warrior", Color: "#ffffff"},
		},
		Arenas: []ArenaStage{
			{ID: 1, Name: "TRAINING GROUNDS", Description: "Beginner arena - Start your journey", RequiredDays: 0, Color: "#808080", Icon: "🏋️", UnlockMessage: "Welcome to the Training Grounds!"},
			{ID: 2, Name: "IRON ARENA", Description: "3 days of consistent deficit", RequiredDays: 3, Color: "#4a5568", Icon: "⚔️", UnlockMessage: "You've entered the Iron Arena!"},
			{ID: 3, Name: "BRONZE ARENA", Description: "7 days of consistent deficit", RequiredDays: 7, Color: "#cd7f32", Icon: "🛡️", UnlockMessage: "Bronze Arena unlocked!"},
			{ID: 4, Name: "SILVER ARENA", Description: "14 days of consistent deficit", RequiredDays: 14, Color: "#c0c0c0", Icon: "⚡", UnlockMessage: "Silver Arena achieved!"},
			{ID: 5, Name: "GOLD ARENA", Description: "21 days of consistent deficit", RequiredDays: 21, Color: "#ffd700", Icon: "👑", UnlockMessage: "Gold Arena conquered!"},
			{ID: 6, Name: "PLATINUM ARENA", Description: "30 days of consistent deficit", RequiredDays: 30, Color: "#e5e4e2", Icon: "💎", UnlockMessage: "Platinum Arena mastered!"},
			{ID: 7, Name: "DIAMOND ARENA", Description: "45 days of consistent deficit", RequiredDays: 45, Color: "#00ffff", Icon: "✨", UnlockMessage: "Diamond Arena reached!"},
			{ID: 8, Name: "LEGENDARY ARENA", Description: "60 days of consistent deficit", RequiredDays: 60, Color: "#ff2d2d", Icon: "🔥", UnlockMessage: "LEGENDARY ARENA UNLOCKED!"},
		},
		Goals: []DailyGoal{
			{Type: GoalCalorieDeficit, Target: NumericTarget(500), XPReward: 100, Description: "Maintain 500 kcal deficit"},
			{Type: GoalCalorieBurn, Target: NumericTarget(3500), XPReward: 80, Description: "Burn 3500+ calories"},
			{Type: GoalCardio, Target: NumericTarget(60), XPReward: 60, Description: "60+ minutes cardio"},
			{Type: GoalStrength, Target: CompletionTarget(), XPReward: 60, Description: "Complete strength training"},
			{Type: GoalWeightLog, Target: NumericTarget(1), XPReward: 50, Description: "Log your weight"},
		},
		Streak: StreakConfig{
			BaseBonus:      25,
			Multiplier:     1.1,
			MaxMultiplier:  2.0,
			MilestoneDays:  []int{3, 7, 14, 21, 30, 60, 90},
			MilestoneBonus: 100,
		},
		RestDay: RestDayConfig{
			WindowDays:       7,
			MinRestDays:      1,
			MaxRestDays:      2,
			DeficitThreshold: 300,
			BaseBonus:        50,
			Multiplier:       1.5,
			PerfectWeekBonus: 100,
		},
	}
}
