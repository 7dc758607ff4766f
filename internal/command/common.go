package command

// embedColor is the accent color for informational embeds.
const embedColor = 0x9B59B6
